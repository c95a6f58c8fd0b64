package storage

import (
	"io"
)

// FileInfo 已保存输出文件的元数据
type FileInfo struct {
	Name string // 保存时使用的文件名
	Path string // 最终存储路径(本地为绝对路径，MinIO为对象名)
	Size int64  // 文件大小(字节)
}

// Store 输出文件存储接口
// 定义输出文件的基本操作，可以有不同实现(本地文件系统、MinIO等)
type Store interface {
	// Save 按给定文件名保存文件并返回文件信息
	Save(reader io.Reader, name string) (FileInfo, error)

	// Get 获取文件内容
	Get(name string) (io.ReadCloser, error)

	// Exists 检查文件是否存在
	Exists(name string) (bool, error)

	// Delete 删除文件
	Delete(name string) error
}
