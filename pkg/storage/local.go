package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore 本地文件系统存储实现
// 输出文件直接保存为 baseDir/name，不做改名
type LocalStore struct {
	baseDir string // 基础存储目录
}

// LocalConfig 本地存储配置
type LocalConfig struct {
	Dir string // 本地存储目录
}

// NewLocalStore 创建本地存储实例
func NewLocalStore(cfg LocalConfig) (*LocalStore, error) {
	// 确保路径是绝对路径
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %v", err)
	}

	// 确保目录存在
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %v", err)
	}

	return &LocalStore{
		baseDir: absDir,
	}, nil
}

// Save 将文件保存为 baseDir/name
// name中包含子目录时会自动创建
func (s *LocalStore) Save(reader io.Reader, name string) (FileInfo, error) {
	filePath := filepath.Join(s.baseDir, name)

	// 创建父目录
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return FileInfo{}, fmt.Errorf("failed to create directory: %v", err)
	}

	// 创建文件
	file, err := os.Create(filePath)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	// 写入文件内容
	size, err := io.Copy(file, reader)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to write file: %v", err)
	}

	return FileInfo{
		Name: name,
		Path: filePath,
		Size: size,
	}, nil
}

// Get 获取文件内容
func (s *LocalStore) Get(name string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.baseDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}

	return file, nil
}

// Exists 检查文件是否存在
func (s *LocalStore) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Delete 删除文件
func (s *LocalStore) Delete(name string) error {
	if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}
