package minio

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/Ilia-Pringless/YaTube/internal/api/config"
)

var (
	// Client is the shared MinIO client instance.
	Client *minio.Client
	// BucketName holds uploaded post images.
	BucketName string
)

// Init connects the MinIO client and ensures the media bucket exists.
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize minio client")
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return errors.Wrap(err, "failed to connect to minio server")
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrap(err, "failed to create media bucket")
		}
	}

	Client = client
	BucketName = cfg.Bucket
	return nil
}
