// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultStoreBackend = "file"
	DefaultDataDir      = "~/.bingo"
	DefaultCardCount    = 1
	MinCardCount        = 1
	MaxCardCount        = 50
)

// Config структура для хранения конфигурации приложения
type Config struct {
	StoreBackend  string `yaml:"store_backend"` // file, s3 или memory
	DataDir       string `yaml:"data_dir"`
	CardCount     int    `yaml:"card_count"`
	Seed          int64  `yaml:"seed"` // 0 - случайное зерно
	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
	AwsKeyPrefix  string `yaml:"aws_key_prefix"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		StoreBackend: DefaultStoreBackend,
		DataDir:      expandHome(DefaultDataDir, home),
		CardCount:    DefaultCardCount,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := expandHome(filePath, home)

	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("ошибка разбора yaml конфигурации: %w", err)
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.StoreBackend == "" {
		config.StoreBackend = DefaultStoreBackend
	}
	if config.DataDir == "" {
		config.DataDir = DefaultDataDir
	}
	config.DataDir = expandHome(config.DataDir, home)
	config.CardCount = ClampCardCount(config.CardCount)

	return config, nil
}

// ClampCardCount ограничивает количество карточек диапазоном [1, 50]
func ClampCardCount(n int) int {
	if n < MinCardCount {
		return MinCardCount
	}
	if n > MaxCardCount {
		return MaxCardCount
	}
	return n
}

// applyEnv переопределяет значения из переменных окружения
func applyEnv(config *Config) error {
	overrides := map[string]*string{
		"BINGO_STORE_BACKEND": &config.StoreBackend,
		"BINGO_DATA_DIR":      &config.DataDir,
		"AWS_BUCKET_NAME":     &config.AwsBucketName,
		"AWS_ACCESS_KEY":      &config.AwsAccessKey,
		"AWS_SECRET_KEY":      &config.AwsSecretKey,
		"AWS_REGION":          &config.AwsRegion,
		"AWS_ENDPOINT":        &config.AwsEndpoint,
	}
	for name, field := range overrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*field = value
		}
	}

	if value := os.Getenv("BINGO_SEED"); value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("неверное значение BINGO_SEED: %w", err)
		}
		config.Seed = seed
	}

	return nil
}

func expandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	return strings.Replace(path, "~", home, 1)
}
