// Package storage archiva los artefactos de ingestión en un bucket S3 compatible.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/geocadastro-api/internal/application/ingestion"
	"github.com/jhoicas/geocadastro-api/pkg/config"
)

// ArtifactContentType tipo MIME con el que se suben los artefactos.
const ArtifactContentType = "text/plain; charset=utf-8"

var _ ingestion.ArtifactArchive = (*MinIOArchive)(nil)

// MinIOArchive implementa ingestion.ArtifactArchive sobre MinIO / AWS S3.
// Es seguro para uso concurrente.
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIO crea el cliente y asegura que el bucket exista (lo crea si falta).
func NewMinIO(ctx context.Context, cfg config.StorageConfig) (*MinIOArchive, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: crear cliente minio: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: verificar bucket: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: crear bucket: %w", err)
		}
	}
	return &MinIOArchive{client: cli, bucket: cfg.Bucket}, nil
}

// Put sube el archivo local path bajo key.
func (a *MinIOArchive) Put(ctx context.Context, key, path string) error {
	_, err := a.client.FPutObject(ctx, a.bucket, key, path, minio.PutObjectOptions{
		ContentType: ArtifactContentType,
	})
	if err != nil {
		return fmt.Errorf("storage: subir %s: %w", key, err)
	}
	return nil
}

func validate(cfg config.StorageConfig) error {
	switch {
	case cfg.Endpoint == "":
		return fmt.Errorf("storage: MINIO_ENDPOINT es obligatorio")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return fmt.Errorf("storage: credenciales minio obligatorias")
	case cfg.Bucket == "":
		return fmt.Errorf("storage: MINIO_BUCKET es obligatorio")
	}
	return nil
}
