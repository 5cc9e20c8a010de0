package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"culture-podcast/config"
	"culture-podcast/internal/models"
)

// MinioClient 是MinIO存储客户端的封装，用于发布生成的播客
type MinioClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinioClient 创建一个新的MinIO客户端
func NewMinioClient(cfg *config.MinIOConfig) (*MinioClient, error) {
	// 解析endpoint
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("解析MinIO endpoint失败: %w", err)
	}

	secure := u.Scheme == "https"
	endpoint := u.Host
	if endpoint == "" {
		endpoint = "localhost:9000"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	// 确保bucket存在
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("检查bucket是否存在失败: %w", err)
	}

	if !exists {
		log.Printf("Bucket %s 不存在，正在创建...", cfg.BucketName)
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("创建bucket失败: %w", err)
		}
	}

	return &MinioClient{
		client:     client,
		bucketName: cfg.BucketName,
	}, nil
}

// PublishGeneration 把一次生成的音频和元数据上传到对象存储，
// 返回音频的预签名URL。发布失败不影响本地产物。
func (c *MinioClient) PublishGeneration(ctx context.Context, result *models.GenerationResult) (string, error) {
	audioKey := "audio/" + filepath.Base(result.AudioPath)
	if err := c.uploadLocalFile(ctx, audioKey, result.AudioPath, "audio/mpeg"); err != nil {
		return "", fmt.Errorf("上传音频失败: %w", err)
	}

	metaKey := "metadata/" + filepath.Base(result.MetadataPath)
	if err := c.uploadLocalFile(ctx, metaKey, result.MetadataPath, "application/json"); err != nil {
		return "", fmt.Errorf("上传元数据失败: %w", err)
	}

	presignedURL, err := c.GetPresignedURL(ctx, audioKey, 7*24*time.Hour)
	if err != nil {
		// 上传已成功，退回相对路径
		log.Printf("生成预签名URL失败: %v", err)
		return fmt.Sprintf("/%s/%s", c.bucketName, audioKey), nil
	}
	return presignedURL, nil
}

// uploadLocalFile 上传本地文件
func (c *MinioClient) uploadLocalFile(ctx context.Context, objectName, path, contentType string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取本地文件失败: %w", err)
	}
	return c.UploadFile(ctx, objectName, data, contentType)
}

// UploadFile 上传数据到MinIO
func (c *MinioClient) UploadFile(ctx context.Context, objectName string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)

	info, err := c.client.PutObject(ctx, c.bucketName, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("上传文件失败: %w", err)
	}

	log.Printf("文件 %s 上传成功，大小: %d", objectName, info.Size)
	return nil
}

// GetPresignedURL 生成预签名URL
func (c *MinioClient) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := c.client.PresignedGetObject(ctx, c.bucketName, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败: %w", err)
	}
	return presignedURL.String(), nil
}

// ListFiles 列出指定前缀的所有文件
func (c *MinioClient) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	objectCh := c.client.ListObjects(ctx, c.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	var objects []string
	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("列出对象失败: %w", object.Err)
		}
		objects = append(objects, object.Key)
	}

	return objects, nil
}
