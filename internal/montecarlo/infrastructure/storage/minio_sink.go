// Package storage 提供基于 MinIO/S3 兼容对象存储的结果交付实现。
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
	"github.com/wyfcoding/optionpricing/pkg/logger"
)

// MinIOResultSink 将定价结果以 CSV 形式上传到对象存储
type MinIOResultSink struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinIOResultSink 创建对象存储结果交付器
func NewMinIOResultSink(endpoint, accessKey, secretKey, bucket, prefix string, useSSL bool) (*MinIOResultSink, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	logger.Info(context.Background(), "minio result sink initialized",
		"endpoint", endpoint, "bucket", bucket, "prefix", prefix)
	return &MinIOResultSink{client: client, bucket: bucket, prefix: prefix}, nil
}

// Publish 将结果上传至 <prefix><requestID>.csv
func (s *MinIOResultSink) Publish(ctx context.Context, requestID string, result domain.PricingResult) error {
	payload := FormatCSV(result)
	objectName := s.prefix + requestID + ".csv"

	start := time.Now()
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		strings.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		logger.Error(ctx, "result upload failed", "object", objectName, "bucket", s.bucket, "error", err)
		return err
	}
	logger.Info(ctx, "result uploaded", "object", objectName, "bucket", s.bucket,
		"duration", time.Since(start))
	return nil
}
