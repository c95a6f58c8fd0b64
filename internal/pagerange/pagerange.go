package pagerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseError 页码范围表达式解析错误
// 记录导致失败的token，任何一个token失败都会使整个表达式解析失败
type ParseError struct {
	Token  string // 导致解析失败的token，空表达式时为空
	Reason string // 失败原因描述
}

// Error 实现error接口
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("invalid page range: %s", e.Reason)
	}
	return fmt.Sprintf("invalid page range %q: %s", e.Token, e.Reason)
}

// Parse 将页码范围表达式解析为有效的页码列表
// 表达式由逗号分隔的token组成，每个token是单个页码或"start-end"形式的区间
// 返回去重后严格升序的页码列表，所有页码都在[1, maxPages]范围内
func Parse(expression string, maxPages int) ([]int, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, &ParseError{Reason: "empty expression"}
	}

	pages := make(map[int]struct{})
	for _, token := range strings.Split(expression, ",") {
		token = strings.TrimSpace(token)

		if strings.Contains(token, "-") {
			// 区间token，例如 "3-5"
			parts := strings.Split(token, "-")
			if len(parts) != 2 {
				return nil, &ParseError{Token: token, Reason: "range must be start-end"}
			}

			start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, &ParseError{Token: token, Reason: "start is not a number"}
			}

			end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, &ParseError{Token: token, Reason: "end is not a number"}
			}

			if start > end {
				return nil, &ParseError{Token: token, Reason: fmt.Sprintf("start greater than end (%d > %d)", start, end)}
			}
			if start < 1 {
				return nil, &ParseError{Token: token, Reason: "page numbers start at 1"}
			}
			if end > maxPages {
				return nil, &ParseError{Token: token, Reason: fmt.Sprintf("page %d exceeds total pages (%d)", end, maxPages)}
			}

			for page := start; page <= end; page++ {
				pages[page] = struct{}{}
			}
		} else {
			// 单页token，例如 "3"
			page, err := strconv.Atoi(token)
			if err != nil {
				return nil, &ParseError{Token: token, Reason: "not a number"}
			}
			if page < 1 {
				return nil, &ParseError{Token: token, Reason: "page numbers start at 1"}
			}
			if page > maxPages {
				return nil, &ParseError{Token: token, Reason: fmt.Sprintf("page %d exceeds total pages (%d)", page, maxPages)}
			}
			pages[page] = struct{}{}
		}
	}

	// 重叠的区间静默合并，输出保持严格升序
	result := make([]int, 0, len(pages))
	for page := range pages {
		result = append(result, page)
	}
	sort.Ints(result)

	return result, nil
}
