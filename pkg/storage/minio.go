package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore MinIO对象存储实现
// 输出文件以name为对象名上传到指定存储桶
type MinioStore struct {
	client     *minio.Client // MinIO客户端
	bucketName string        // 存储桶名称
}

// MinioConfig MinIO存储配置
type MinioConfig struct {
	Endpoint  string // MinIO服务端点
	AccessKey string // 访问密钥ID
	SecretKey string // 秘密访问密钥
	UseSSL    bool   // 是否使用SSL
	Bucket    string // 存储桶名称
}

// NewMinioStore 创建MinIO存储实例
func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	// 创建MinIO客户端
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	// 检查存储桶是否存在，不存在则创建
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %v", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %v", err)
		}
	}

	return &MinioStore{
		client:     client,
		bucketName: cfg.Bucket,
	}, nil
}

// Save 将文件上传到MinIO存储
// 注意：对于大文件，应该使用流式上传而不是加载到内存
func (s *MinioStore) Save(reader io.Reader, name string) (FileInfo, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to read file content: %v", err)
	}

	// 上传文件到MinIO
	size := int64(len(content))
	_, err = s.client.PutObject(
		context.Background(),
		s.bucketName,
		name,
		bytes.NewReader(content),
		size,
		minio.PutObjectOptions{ContentType: "application/pdf"},
	)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to upload file: %v", err)
	}

	return FileInfo{
		Name: name,
		Path: name,
		Size: size,
	}, nil
}

// Get 获取MinIO中的文件
func (s *MinioStore) Get(name string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(
		context.Background(),
		s.bucketName,
		name,
		minio.GetObjectOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %v", err)
	}

	return obj, nil
}

// Exists 检查文件是否存在
func (s *MinioStore) Exists(name string) (bool, error) {
	_, err := s.client.StatObject(
		context.Background(),
		s.bucketName,
		name,
		minio.StatObjectOptions{},
	)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %v", err)
	}
	return true, nil
}

// Delete 删除文件
func (s *MinioStore) Delete(name string) error {
	err := s.client.RemoveObject(
		context.Background(),
		s.bucketName,
		name,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		return fmt.Errorf("failed to delete object: %v", err)
	}
	return nil
}
