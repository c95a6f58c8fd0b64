package pagerange

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseValidExpressions 测试有效表达式的解析
func TestParseValidExpressions(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		maxPages   int
		want       []int
	}{
		{"single page", "3", 5, []int{3}},
		{"multiple pages", "1,3,5", 5, []int{1, 3, 5}},
		{"simple range", "2-4", 5, []int{2, 3, 4}},
		{"mixed pages and ranges", "1,3-4,6-8,10", 10, []int{1, 3, 4, 6, 7, 8, 10}},
		{"overlapping ranges collapse", "2,2-4,3", 5, []int{2, 3, 4}},
		{"single page range", "1-1", 1, []int{1}},
		{"full document range", "1-5", 5, []int{1, 2, 3, 4, 5}},
		{"unordered tokens sorted", "5,1,3", 5, []int{1, 3, 5}},
		{"whitespace around tokens", " 1 , 3 - 4 ", 5, []int{1, 3, 4}},
		{"last page", "5", 5, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expression, tt.maxPages)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseInvalidExpressions 测试无效表达式的解析失败
func TestParseInvalidExpressions(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		maxPages   int
	}{
		{"empty expression", "", 5},
		{"whitespace only", "   ", 5},
		{"non numeric page", "abc", 5},
		{"non numeric range start", "a-3", 5},
		{"non numeric range end", "1-b", 5},
		{"start greater than end", "3-2", 5},
		{"range start below one", "0-2", 5},
		{"range end exceeds max", "1-6", 5},
		{"page below one", "0", 5},
		{"page exceeds max", "6", 5},
		{"negative page", "-3", 5},
		{"double hyphen", "1-2-3", 5},
		{"empty token", "1,,3", 5},
		{"one bad token aborts all", "1,2,99", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expression, tt.maxPages)
			require.Error(t, err)
			// 失败时不返回部分结果
			assert.Nil(t, got)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

// TestParseIdempotent 测试解析是无状态的纯函数
func TestParseIdempotent(t *testing.T) {
	first, err := Parse("1,3-4,6-8,10", 10)
	require.NoError(t, err)

	second, err := Parse("1,3-4,6-8,10", 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestParseErrorMessage 测试错误信息包含导致失败的token
func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("1,3-9", 5)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "3-9", parseErr.Token)
	assert.Contains(t, err.Error(), "3-9")
}
