package models

// Pair 一次提取运行中的一个工作单元
// 由一个源PDF路径和对应的页码范围表达式组成
type Pair struct {
	Path   string // 源PDF文件路径
	Ranges string // 页码范围表达式，例如 "1,3-4,6-8"
}

// PairReport 单个工作单元的处理记录
type PairReport struct {
	Pair  Pair  // 对应的工作单元
	Pages int   // 成功复制的页数
	Err   error // 失败原因，成功时为nil
}

// Skipped 判断该工作单元是否被跳过
func (r PairReport) Skipped() bool {
	return r.Err != nil
}

// Result 一次提取运行的最终结果
type Result struct {
	OutputPath string       // 输出文件的最终路径，未写入时为空
	Written    bool         // 是否产生了输出文件
	Reports    []PairReport // 每个工作单元的处理记录，与输入顺序一致
}

// PagesWritten 统计写入输出文件的总页数
func (r *Result) PagesWritten() int {
	total := 0
	for _, report := range r.Reports {
		total += report.Pages
	}
	return total
}

// Skipped 统计被跳过的工作单元数量
func (r *Result) Skipped() int {
	count := 0
	for _, report := range r.Reports {
		if report.Skipped() {
			count++
		}
	}
	return count
}
