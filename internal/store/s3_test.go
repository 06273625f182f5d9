package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// mockS3Client мок для S3 клиента
type mockS3Client struct {
	objects map[string][]byte
	getErr  error
}

func (m *mockS3Client) GetObjectWithContext(_ aws.Context, input *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.objects[aws.StringValue(input.Key)]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

// mockS3Uploader мок для S3 uploader
type mockS3Uploader struct {
	client    *mockS3Client
	bucket    string
	uploadErr error
}

func (m *mockS3Uploader) UploadWithContext(_ aws.Context, input *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	m.bucket = aws.StringValue(input.Bucket)
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	m.client.objects[aws.StringValue(input.Key)] = data
	return &s3manager.UploadOutput{}, nil
}

func newTestS3(prefix string) (*S3, *mockS3Client, *mockS3Uploader) {
	client := &mockS3Client{objects: make(map[string][]byte)}
	uploader := &mockS3Uploader{client: client}
	config := &S3Config{
		Region:     "us-east-1",
		AccessKey:  "test-access-key",
		SecretKey:  "test-secret-key",
		Endpoint:   "https://s3.amazonaws.com",
		BucketName: "test-bucket",
		Prefix:     prefix,
	}
	return newS3WithClients(config, client, uploader), client, uploader
}

func TestS3Store(t *testing.T) {
	st, _, _ := newTestS3("")
	testStoreContract(t, st)
}

func TestS3StoreKeyPrefix(t *testing.T) {
	ctx := context.Background()
	st, client, uploader := newTestS3("bingo/prod")

	if err := st.Put(ctx, "djBingoPlaylists", []byte("data")); err != nil {
		t.Fatalf("Ошибка записи: %v", err)
	}

	if _, ok := client.objects["bingo/prod/djBingoPlaylists.yaml"]; !ok {
		t.Errorf("Ожидался объект с префиксом, получено: %v", client.objects)
	}
	if uploader.bucket != "test-bucket" {
		t.Errorf("Ожидался bucket: test-bucket, получено: %s", uploader.bucket)
	}
}

func TestS3StoreErrors(t *testing.T) {
	ctx := context.Background()
	st, client, uploader := newTestS3("")

	uploader.uploadErr = awserr.New("AccessDenied", "Access Denied", nil)
	if err := st.Put(ctx, "k", []byte("v")); err == nil {
		t.Error("Ожидалась ошибка записи")
	}

	client.getErr = awserr.New("AccessDenied", "Access Denied", nil)
	_, err := st.Get(ctx, "k")
	if err == nil {
		t.Fatal("Ожидалась ошибка чтения")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("Ошибка доступа не должна превращаться в ErrNotFound")
	}
}

func TestNewS3RequiresBucket(t *testing.T) {
	if _, err := NewS3(&S3Config{Region: "us-east-1"}); err == nil {
		t.Error("Ожидалась ошибка без бакета")
	}
}
