// Package storage menyimpan file laporan (PDF/DOC/DOCX) ke MinIO atau disk lokal.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"praktikum_backend/internals/configs"
)

var ErrNotFound = errors.New("object tidak ditemukan")

type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// BlobStorage: kontrak File Storage. Put mengembalikan key yang stabil.
type BlobStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (ObjectInfo, error)
	Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// NewFromEnv memilih driver dari STORAGE_DRIVER (local|minio).
func NewFromEnv(ctx context.Context) (BlobStorage, error) {
	switch strings.ToLower(configs.StorageDriver) {
	case "", "local":
		return NewLocal(configs.UploadDir)
	case "minio":
		return NewMinio(ctx, MinioConfig{
			Endpoint:  configs.GetEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: configs.GetEnv("MINIO_ACCESS_KEY"),
			SecretKey: configs.GetEnv("MINIO_SECRET_KEY"),
			Bucket:    configs.GetEnv("MINIO_BUCKET", "laporan"),
			Region:    configs.GetEnv("MINIO_REGION", "us-east-1"),
			UseSSL:    configs.GetEnvBool("MINIO_USE_SSL", false),
		})
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER tidak dikenal: %q", configs.StorageDriver)
	}
}

// BuildKey: <dir>/<uuid><ext>, mis. laporan/12/3f2c...pdf
func BuildKey(dir, ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(strings.Trim(dir, "/"), uuid.NewString()+ext)
}

func cleanKey(key string) (string, error) {
	k := path.Clean("/" + strings.TrimSpace(key))
	k = strings.TrimPrefix(k, "/")
	if k == "" || k == "." {
		return "", fmt.Errorf("key kosong")
	}
	return k, nil
}
