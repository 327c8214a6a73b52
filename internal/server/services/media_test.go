package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/citylifes/internal/common"
	sc "github.com/dmitrijs2005/citylifes/internal/server/config"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
)

var mediaNow = time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC)

func newMediaSvc(t *testing.T) *MediaService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "listing-images",
	}
	listings := &fakeListings{byID: map[string]*models.Listing{"l1": {ID: "l1", OwnerID: "alice"}}}
	s := NewMediaService(db, &fakeRepoManager{listings: listings}, cfg)
	s.now = fixedClock(mediaNow)
	return s
}

// stubAWS replaces the AWS seams for the duration of the test.
func stubAWS(t *testing.T, loadErr, presignErr error) *s3.PutObjectInput {
	t.Helper()

	origLoad, origNewS3, origNewPre, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, loadErr
	}

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		require.NotNil(t, opts.BaseEndpoint)
		assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
		assert.True(t, opts.UsePathStyle)
		return &s3.Client{}
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		require.NotNil(t, c)
		return &s3.PresignClient{}
	}

	var captured s3.PutObjectInput
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		captured = *in
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		assert.Equal(t, UploadURLValidity, po.Expires)
		if presignErr != nil {
			return nil, presignErr
		}
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/listing-images/" + *in.Key + "?X-Amz-Signature=abc"}, nil
	}
	return &captured
}

func TestImageUploadURL_Success(t *testing.T) {
	captured := stubAWS(t, nil, nil)
	s := newMediaSvc(t)

	key, url, err := s.ImageUploadURL(context.Background(), "alice", "l1")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^listings/l1/2026/02/[0-9a-f-]{36}$`), key)
	assert.Contains(t, url, key)
	assert.Equal(t, "listing-images", *captured.Bucket)
	assert.Equal(t, key, *captured.Key)
}

func TestImageUploadURL_Ownership(t *testing.T) {
	stubAWS(t, nil, nil)
	s := newMediaSvc(t)

	_, _, err := s.ImageUploadURL(context.Background(), "bob", "l1")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, _, err = s.ImageUploadURL(context.Background(), "alice", "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, _, err = s.ImageUploadURL(context.Background(), "alice", "")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestImageUploadURL_AWSErrors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		stubAWS(t, errors.New("load-fail"), nil)
		_, _, err := newMediaSvc(t).ImageUploadURL(context.Background(), "alice", "l1")
		assert.EqualError(t, err, "load-fail")
	})

	t.Run("presign", func(t *testing.T) {
		stubAWS(t, nil, errors.New("presign-put-fail"))
		_, _, err := newMediaSvc(t).ImageUploadURL(context.Background(), "alice", "l1")
		assert.EqualError(t, err, "presign-put-fail")
	})
}

func TestImageStorageKey(t *testing.T) {
	k1 := ImageStorageKey("abc", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))
	k2 := ImageStorageKey("abc", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))

	assert.Regexp(t, `^listings/abc/2025/11/`, k1)
	assert.NotEqual(t, k1, k2)
}
