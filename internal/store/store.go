// Package store предоставляет хранилища ключ-значение для сохранения плейлистов
package store

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/hazadus/go-bingo/internal/config"
)

// ErrNotFound возвращается, если ключ отсутствует в хранилище
var ErrNotFound = errors.New("ключ не найден")

// Store - хранилище ключ-значение
type Store interface {
	// Get возвращает значение по ключу или ErrNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Put полностью перезаписывает значение по ключу
	Put(ctx context.Context, key string, value []byte) error
}

// Типы хранилищ, которые можно выбрать в конфигурации
const (
	BackendFile   = "file"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

// Open создает хранилище по настройкам приложения
func Open(cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.StoreBackend) {
	case "", BackendFile:
		return NewFile(cfg.DataDir), nil
	case BackendS3:
		return NewS3(&S3Config{
			Region:     cfg.AwsRegion,
			AccessKey:  cfg.AwsAccessKey,
			SecretKey:  cfg.AwsSecretKey,
			Endpoint:   cfg.AwsEndpoint,
			BucketName: cfg.AwsBucketName,
			Prefix:     cfg.AwsKeyPrefix,
		})
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, errors.Errorf("неизвестный тип хранилища: %s", cfg.StoreBackend)
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("пустой ключ")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return errors.Errorf("недопустимый ключ: %q", key)
	}
	return nil
}
