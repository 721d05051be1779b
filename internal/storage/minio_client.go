package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"gameborrow/internal/config"
)

type Storage interface {
	UploadGameImage(ctx context.Context, gameID, fileName string, file io.Reader, size int64) (objectName, uri string, err error)
	DeleteObject(ctx context.Context, objectName string) error
	ObjectNameFromURL(uri string) (string, bool)
	BucketExists(ctx context.Context) error
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (m *MinIOClient) UploadGameImage(ctx context.Context, gameID, fileName string, file io.Reader, size int64) (string, string, error) {
	now := time.Now()
	objectName := gameImageObjectName(gameID, fileName, uuid.NewString())

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentTypeOf(fileName),
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"game-id":           gameID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload game image: %w", err)
	}

	return objectName, objectURL(m.publicURL, m.bucket, objectName), nil
}

func (m *MinIOClient) DeleteObject(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{GovernanceBypass: true})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", objectName, err)
	}
	return nil
}

func (m *MinIOClient) BucketExists(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("object storage is unreachable: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}

func gameImageObjectName(gameID, fileName, unique string) string {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}
	return fmt.Sprintf("games/%s/%s%s", gameID, unique, fileExt)
}

func contentTypeOf(fileName string) string {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}
	if contentType := mime.TypeByExtension(fileExt); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

func objectURL(publicURL, bucket, objectName string) string {
	return publicURL + "/" + bucket + "/" + objectName
}

// ObjectNameFromURL reverses objectURL for URIs that live in this bucket.
func (m *MinIOClient) ObjectNameFromURL(uri string) (string, bool) {
	prefix := m.publicURL + "/" + m.bucket + "/"
	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	return strings.TrimPrefix(uri, prefix), true
}
