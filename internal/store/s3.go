package store

import (
	"bytes"
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

// S3Config содержит настройки для S3
type S3Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
	Prefix     string // Префикс ключей внутри бакета
}

type objectGetter interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
}

type objectUploader interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// S3 хранит значения объектами в бакете S3
type S3 struct {
	client   objectGetter
	uploader objectUploader
	config   *S3Config
}

// NewS3 создает хранилище поверх S3
func NewS3(config *S3Config) (*S3, error) {
	if config.BucketName == "" {
		return nil, errors.New("не указан бакет S3")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания AWS сессии")
	}

	return newS3WithClients(config, s3.New(sess), s3manager.NewUploader(sess)), nil
}

func newS3WithClients(config *S3Config, client objectGetter, uploader objectUploader) *S3 {
	return &S3{
		client:   client,
		uploader: uploader,
		config:   config,
	}
}

func (s *S3) objectKey(key string) string {
	if s.config.Prefix == "" {
		return key + fileExt
	}
	return path.Join(s.config.Prefix, key+fileExt)
}

// Get скачивает объект ключа
func (s *S3) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "ошибка загрузки ключа %s из S3", key)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "ошибка чтения ключа %s из S3", key)
	}
	return data, nil
}

// Put загружает значение в объект ключа
func (s *S3) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(s.objectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/yaml"),
	})
	if err != nil {
		return errors.Wrapf(err, "ошибка сохранения ключа %s в S3", key)
	}
	return nil
}
