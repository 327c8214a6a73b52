package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/citylifes/internal/common"
	sc "github.com/dmitrijs2005/citylifes/internal/server/config"
	"github.com/dmitrijs2005/citylifes/internal/server/repositories/repomanager"
)

// UploadURLValidity is how long a presigned image upload URL stays valid.
const UploadURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

type MediaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewMediaService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *MediaService {
	return &MediaService{
		db:          db,
		repomanager: m,
		config:      config,
		now:         time.Now,
	}
}

// ImageStorageKey returns a fresh object key for an image of listingID.
func ImageStorageKey(listingID string, at time.Time) string {
	return fmt.Sprintf("listings/%s/%d/%02d/%v", listingID, at.Year(), int(at.Month()), uuid.New())
}

func (s *MediaService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// ImageUploadURL returns a storage key and a presigned PUT URL for a new
// image of the listing. Only the listing owner may upload.
func (s *MediaService) ImageUploadURL(ctx context.Context, userID, listingID string) (string, string, error) {
	if listingID == "" {
		return "", "", fmt.Errorf("%w: listing id is required", common.ErrorValidation)
	}

	listing, err := s.repomanager.Listings(s.db).GetByID(ctx, listingID)
	if err != nil {
		return "", "", err
	}
	if listing.OwnerID != userID {
		return "", "", common.ErrorForbidden
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := ImageStorageKey(listingID, s.now().UTC())

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(UploadURLValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}
