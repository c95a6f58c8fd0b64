package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalStoreSave 测试本地存储的保存功能
func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(LocalConfig{Dir: dir})
	require.NoError(t, err)

	info, err := store.Save(strings.NewReader("hello pdf"), "output.pdf")
	require.NoError(t, err)

	assert.Equal(t, "output.pdf", info.Name)
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, filepath.Join(dir, "output.pdf"), info.Path)

	// 文件内容完整写入
	data, err := os.ReadFile(info.Path)
	require.NoError(t, err)
	assert.Equal(t, "hello pdf", string(data))
}

// TestLocalStoreSaveNestedName 测试带子目录的文件名会自动创建父目录
func TestLocalStoreSaveNestedName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(LocalConfig{Dir: dir})
	require.NoError(t, err)

	info, err := store.Save(strings.NewReader("nested"), filepath.Join("sub", "deep", "output.pdf"))
	require.NoError(t, err)

	_, err = os.Stat(info.Path)
	assert.NoError(t, err)
}

// TestLocalStoreCreatesBaseDir 测试基础目录不存在时自动创建
func TestLocalStoreCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not", "yet", "created")

	_, err := NewLocalStore(LocalConfig{Dir: dir})
	require.NoError(t, err)

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

// TestLocalStoreGet 测试读取已保存的文件
func TestLocalStoreGet(t *testing.T) {
	store, err := NewLocalStore(LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("roundtrip"), "output.pdf")
	require.NoError(t, err)

	reader, err := store.Get("output.pdf")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", string(data))
}

// TestLocalStoreExists 测试文件存在性检查
func TestLocalStoreExists(t *testing.T) {
	store, err := NewLocalStore(LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	exists, err := store.Exists("output.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Save(strings.NewReader("x"), "output.pdf")
	require.NoError(t, err)

	exists, err = store.Exists("output.pdf")
	require.NoError(t, err)
	assert.True(t, exists)
}

// TestLocalStoreDelete 测试删除文件
func TestLocalStoreDelete(t *testing.T) {
	store, err := NewLocalStore(LocalConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("x"), "output.pdf")
	require.NoError(t, err)

	require.NoError(t, store.Delete("output.pdf"))

	exists, err := store.Exists("output.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// 删除不存在的文件返回错误
	assert.Error(t, store.Delete("missing.pdf"))
}
