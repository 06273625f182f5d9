package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const fileExt = ".yaml"

// File хранит каждый ключ в отдельном файле внутри каталога
type File struct {
	dir string
}

// NewFile создает файловое хранилище. Тильда в пути раскрывается в домашний каталог.
func NewFile(dir string) *File {
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = strings.Replace(dir, "~", home, 1)
		}
	}
	return &File{dir: dir}
}

// Dir возвращает каталог хранилища
func (f *File) Dir() string {
	return f.dir
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+fileExt)
}

// Get читает значение из файла ключа
func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrapf(err, "ошибка чтения ключа %s", key)
	}
	return data, nil
}

// Put атомарно перезаписывает файл ключа
func (f *File) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога данных")
	}

	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return errors.Wrap(err, "ошибка создания временного файла")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "ошибка записи ключа %s", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "ошибка записи ключа %s", key)
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return errors.Wrapf(err, "ошибка сохранения ключа %s", key)
	}
	return nil
}
