package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePut struct {
	in      *s3.PutObjectInput
	payload []byte
	err     error
}

func (f *fakePut) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	f.payload, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()
	api := &fakePut{}
	c := &Client{api: api, bucket: "outbox"}

	payload := []byte("hello")
	require.NoError(t, c.Upload(context.Background(), "outbox/x.eml", bytes.NewReader(payload), int64(len(payload)), "message/rfc822"))

	assert.Equal(t, "outbox", aws.ToString(api.in.Bucket))
	assert.Equal(t, "outbox/x.eml", aws.ToString(api.in.Key))
	assert.Equal(t, "message/rfc822", aws.ToString(api.in.ContentType))
	assert.Equal(t, int64(5), aws.ToInt64(api.in.ContentLength))
	assert.Equal(t, payload, api.payload)
}

func TestClient_UploadUnknownSize(t *testing.T) {
	t.Parallel()
	api := &fakePut{}
	c := &Client{api: api, bucket: "outbox"}

	require.NoError(t, c.Upload(context.Background(), "k", bytes.NewReader([]byte("x")), -1, "text/plain"))
	assert.Nil(t, api.in.ContentLength)
}

func TestClient_UploadError(t *testing.T) {
	t.Parallel()
	c := &Client{api: &fakePut{err: errors.New("AccessDenied")}, bucket: "outbox"}

	err := c.Upload(context.Background(), "k", bytes.NewReader(nil), 0, "text/plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestNew_ConfiguresEndpointAndCredentials(t *testing.T) {
	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() { loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew })

	var (
		loaded       config.LoadOptions
		baseEndpoint string
		pathStyle    bool
	)
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&loaded))
		}
		return aws.Config{Region: loaded.Region}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var o s3.Options
		for _, fn := range optFns {
			fn(&o)
		}
		baseEndpoint = aws.ToString(o.BaseEndpoint)
		pathStyle = o.UsePathStyle
		return &s3.Client{}
	}

	c, err := New(context.Background(), Options{
		Region:       "eu-central-1",
		Bucket:       "outbox",
		AccessKey:    "key",
		SecretKey:    "secret",
		BaseEndpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)

	assert.Equal(t, "outbox", c.bucket)
	assert.Equal(t, "eu-central-1", loaded.Region)
	assert.NotNil(t, loaded.Credentials)
	assert.Equal(t, "http://127.0.0.1:9000", baseEndpoint)
	assert.True(t, pathStyle)
}

func TestNew_LoadError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no region")
	}

	_, err := New(context.Background(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load aws config")
}
