package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// signedURLExpiry is how long a minted upload URL stays valid.
const signedURLExpiry = 60 * time.Second

// SignedURLStorage mints time-limited pre-signed PUT URLs against an
// S3-compatible object store. The client uploads directly to storage
// out-of-band; this process never sees the file bytes.
type SignedURLStorage struct {
	client *minio.Client
	bucket string
}

// NewSignedURLStorage builds a SignedURLStorage from object-storage
// credentials. It fails fast when credentials are absent.
func NewSignedURLStorage(endpoint, region, bucket, accessKey, secretKey string) (*SignedURLStorage, error) {
	if bucket == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("object storage credentials not configured")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Region: region,
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &SignedURLStorage{client: client, bucket: bucket}, nil
}

// SignUploadURL generates a fresh random object key and returns a pre-signed
// PUT URL for it, valid for 60 seconds.
func (s *SignedURLStorage) SignUploadURL(ctx context.Context) (string, error) {
	key, err := newObjectKey()
	if err != nil {
		return "", err
	}

	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, signedURLExpiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// newObjectKey returns 16 cryptographically random bytes hex-encoded,
// effectively collision-free per call.
func newObjectKey() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
