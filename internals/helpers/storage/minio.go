package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

type MinioStorage struct {
	client *minio.Client
	bucket string
	region string

	ensureMu      sync.Mutex
	bucketEnsured bool
}

func NewMinio(ctx context.Context, cfg MinioConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal membuat client MinIO: %w", err)
	}
	s := &MinioStorage{client: client, bucket: cfg.Bucket, region: cfg.Region}

	// MinIO belum siap saat startup tidak menggagalkan service; dicoba lagi saat dipakai.
	if err := s.ensureBucket(ctx); err != nil {
		zap.L().Warn("MinIO belum siap", zap.String("endpoint", cfg.Endpoint), zap.Error(err))
	} else {
		zap.L().Info("MinIO connected", zap.String("endpoint", cfg.Endpoint), zap.String("bucket", cfg.Bucket))
	}
	return s, nil
}

func (s *MinioStorage) ensureBucket(ctx context.Context) error {
	s.ensureMu.Lock()
	defer s.ensureMu.Unlock()
	if s.bucketEnsured {
		return nil
	}
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("cek bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("buat bucket: %w", err)
		}
		zap.L().Info("bucket dibuat", zap.String("bucket", s.bucket))
	}
	s.bucketEnsured = true
	return nil
}

func (s *MinioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (ObjectInfo, error) {
	k, err := cleanKey(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := s.ensureBucket(ctx); err != nil {
		return ObjectInfo{}, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	info, err := s.client.PutObject(ctx, s.bucket, k, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("upload ke MinIO: %w", err)
	}
	return ObjectInfo{Key: k, Size: info.Size, ContentType: contentType}, nil
}

func (s *MinioStorage) Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	k, err := cleanKey(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := s.client.StatObject(ctx, s.bucket, k, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("stat object: %w", err)
	}
	obj, err := s.client.GetObject(ctx, s.bucket, k, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("get object: %w", err)
	}
	return obj, ObjectInfo{Key: k, Size: st.Size, ContentType: st.ContentType}, nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	k, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, k, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("hapus object: %w", err)
	}
	return nil
}
