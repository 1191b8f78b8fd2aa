package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"fotogram/internal/config"
	"fotogram/internal/model"
)

const (
	postImageFolder   = "posts"
	postImageMaxEdge  = 1080
	postImageQuality  = 85
	imageCacheControl = "public, max-age=31536000"
)

// UploadResult identifies a stored image by public URL and object key.
type UploadResult struct {
	URL string
	Key string
}

// Uploader stores post images. PostService depends on this interface so
// tests can swap the R2 client for a stub.
type Uploader interface {
	Upload(ctx context.Context, dataURI string) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// MediaService uploads post images to Cloudflare R2 via the S3 API.
type MediaService struct {
	s3Client  *s3.Client
	bucket    string
	publicURL string
}

func NewMediaService(ctx context.Context, cfg *config.Config) (*MediaService, error) {
	if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" || cfg.R2BucketName == "" || cfg.R2PublicURL == "" {
		return nil, fmt.Errorf("missing Cloudflare R2 configuration")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for R2: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &MediaService{
		s3Client:  s3Client,
		bucket:    cfg.R2BucketName,
		publicURL: strings.TrimSuffix(cfg.R2PublicURL, "/"),
	}, nil
}

// Upload decodes a base64 data URI, normalizes the image to a bounded JPEG
// and stores it. Any decoding failure aborts the whole post write.
func (s *MediaService) Upload(ctx context.Context, dataURI string) (*UploadResult, error) {
	raw, err := decodeImageDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	jpegBytes, err := normalizeToJPEG(raw)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%s.jpg", postImageFolder, uuid.NewString())
	if err := s.putObject(ctx, key, jpegBytes); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", s.publicURL, key)
	return &UploadResult{URL: url, Key: key}, nil
}

// Delete removes an object by key, used to clean up after a failed post write.
func (s *MediaService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// decodeImageDataURI accepts "data:image/<type>;base64,<payload>" or a bare
// base64 payload and returns the decoded bytes with a size bound.
func decodeImageDataURI(dataURI string) ([]byte, error) {
	payload := dataURI
	if strings.HasPrefix(dataURI, "data:") {
		idx := strings.Index(dataURI, ",")
		if idx == -1 {
			return nil, model.ErrInvalidImage
		}
		meta := dataURI[:idx]
		if !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
			return nil, model.ErrInvalidImage
		}
		payload = dataURI[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, model.ErrInvalidImage
	}
	if len(raw) == 0 || len(raw) > model.MaxPostImageSize {
		return nil, model.ErrInvalidImage
	}

	return raw, nil
}

// normalizeToJPEG bounds the longest edge and re-encodes as JPEG.
func normalizeToJPEG(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, model.ErrInvalidImage
	}

	bounds := img.Bounds()
	if bounds.Dx() > postImageMaxEdge || bounds.Dy() > postImageMaxEdge {
		img = imaging.Fit(img, postImageMaxEdge, postImageMaxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(postImageQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *MediaService) putObject(ctx context.Context, key string, body []byte) error {
	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("image/jpeg"),
		CacheControl: aws.String(imageCacheControl),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to r2: %w", err)
	}
	return nil
}
