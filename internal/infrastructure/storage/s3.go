package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/produtivi/financeiro-backend/internal/infrastructure/config"
)

// S3Uploader publica objetos em um bucket S3 (ou compatível)
type S3Uploader struct {
	api       *s3.S3
	bucket    string
	publicURL string
}

// NewS3Uploader cria um uploader a partir da configuração de storage.
// Endpoint customizado permite usar provedores S3-compatíveis.
func NewS3Uploader(cfg *config.StorageConfig) (*S3Uploader, error) {
	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}

	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar sessão S3: %w", err)
	}

	return &S3Uploader{
		api:       s3.New(sess),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// Upload grava o objeto com leitura pública e devolve a URL final
func (u *S3Uploader) Upload(key string, body io.ReadSeeker, contentType string) (string, error) {
	_, err := u.api.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("falha ao subir objeto %s: %w", key, err)
	}

	if u.publicURL != "" {
		return fmt.Sprintf("%s/%s", u.publicURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}
