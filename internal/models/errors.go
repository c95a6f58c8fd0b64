package models

import "errors"

var (
	// ErrSourceUnreadable 源PDF无法打开或读取页面结构错误
	ErrSourceUnreadable = errors.New("source document unreadable")

	// ErrNoPagesProduced 所有工作单元都被跳过、没有收集到任何页面
	ErrNoPagesProduced = errors.New("no pages produced")

	// ErrDestinationUnwritable 输出目录无法创建或输出文件写入失败错误
	ErrDestinationUnwritable = errors.New("destination unwritable")
)
