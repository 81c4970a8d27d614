package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		b, _ := io.ReadAll(params.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
}

func TestR2Uploader_Upload(t *testing.T) {
	putter := &fakePutter{}
	u := newR2Uploader(putter, "exports-bucket", "https://cdn.example.com/files")

	res, err := u.Upload(context.Background(), "exports/a.csv", "text/csv", strings.NewReader("ID\n"))
	require.NoError(t, err)

	assert.Equal(t, "exports/a.csv", res.Key)
	assert.Equal(t, "abc123", res.ETag)
	assert.Equal(t, "https://cdn.example.com/files/exports/a.csv", res.Location)

	assert.Equal(t, "exports-bucket", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "text/csv", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "ID\n", putter.body)
}

func TestR2Uploader_UploadError(t *testing.T) {
	u := newR2Uploader(&fakePutter{err: errors.New("boom")}, "b", "https://cdn.example.com")

	_, err := u.Upload(context.Background(), "k.csv", "text/csv", strings.NewReader(""))
	assert.ErrorContains(t, err, "k.csv")
}

func TestR2Uploader_GetPublicURL(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"https://cdn.example.com", "exports/a.csv", "https://cdn.example.com/exports/a.csv"},
		{"https://cdn.example.com/", "/exports/a.csv", "https://cdn.example.com/exports/a.csv"},
		{"https://cdn.example.com/pub", "a.csv", "https://cdn.example.com/pub/a.csv"},
		{"", "a.csv", ""},
		{"https://cdn.example.com", "", ""},
	}
	for _, tt := range tests {
		u := newR2Uploader(nil, "b", tt.base)
		assert.Equal(t, tt.want, u.GetPublicURL(tt.key), "base=%q key=%q", tt.base, tt.key)
	}
}

func TestNewR2Uploader_RequiresAllFields(t *testing.T) {
	_, err := NewR2Uploader(context.Background(), R2UploaderConfig{AccountID: "acc"})
	assert.Error(t, err)
}
