package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// clearEnv убирает переменные окружения, влияющие на конфигурацию
func clearEnv(t *testing.T) {
	for _, name := range []string{
		"BINGO_STORE_BACKEND", "BINGO_DATA_DIR", "BINGO_SEED",
		"AWS_BUCKET_NAME", "AWS_ACCESS_KEY", "AWS_SECRET_KEY", "AWS_REGION", "AWS_ENDPOINT",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, dir string, value interface{}) string {
	t.Helper()

	data, err := yaml.Marshal(value)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}
	return configPath
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()

	testConfig := Config{
		StoreBackend:  "s3",
		DataDir:       filepath.Join(tempDir, "data"),
		CardCount:     12,
		Seed:          1234,
		AwsBucketName: "test-bucket",
		AwsAccessKey:  "test-access-key",
		AwsSecretKey:  "test-secret-key",
		AwsRegion:     "us-east-1",
		AwsEndpoint:   "https://s3.amazonaws.com",
		AwsKeyPrefix:  "bingo",
	}
	configPath := writeConfig(t, tempDir, testConfig)

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if *loadedConfig != testConfig {
		t.Errorf("Ожидалась конфигурация %+v, получено %+v", testConfig, *loadedConfig)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	clearEnv(t)

	loadedConfig, err := LoadConfig("/non/existent/config.yaml")
	if err != nil {
		t.Fatalf("Отсутствующий файл не должен быть ошибкой: %v", err)
	}

	home, _ := os.UserHomeDir()
	if loadedConfig.DataDir != filepath.Join(home, ".bingo") {
		t.Errorf("Ожидался DataDir по умолчанию, получено: %s", loadedConfig.DataDir)
	}
	if loadedConfig.StoreBackend != DefaultStoreBackend {
		t.Errorf("Ожидался StoreBackend по умолчанию, получено: %s", loadedConfig.StoreBackend)
	}
	if loadedConfig.CardCount != DefaultCardCount {
		t.Errorf("Ожидался CardCount по умолчанию, получено: %d", loadedConfig.CardCount)
	}
	if loadedConfig.Seed != 0 {
		t.Errorf("Ожидался нулевой Seed, получено: %d", loadedConfig.Seed)
	}
}

func TestLoadConfigWithTilde(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()

	configPath := writeConfig(t, tempDir, map[string]string{
		"data_dir": "~/custom-bingo",
	})

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, "custom-bingo")
	if loadedConfig.DataDir != expected {
		t.Errorf("Ожидался DataDir с раскрытой тильдой: %s, получено: %s", expected, loadedConfig.DataDir)
	}
}

func TestLoadConfigClampsCardCount(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		count    int
		expected int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{50, 50},
		{51, 50},
		{1000, 50},
	}

	for _, test := range tests {
		configPath := writeConfig(t, t.TempDir(), map[string]int{"card_count": test.count})

		loadedConfig, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("Ошибка загрузки конфигурации: %v", err)
		}
		if loadedConfig.CardCount != test.expected {
			t.Errorf("card_count %d: ожидалось %d, получено %d", test.count, test.expected, loadedConfig.CardCount)
		}
	}
}

func TestEnvVarOverride(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()

	configPath := writeConfig(t, tempDir, Config{
		AwsBucketName: "default-bucket",
		AwsAccessKey:  "default-key",
		AwsRegion:     "us-west-1",
	})

	t.Setenv("AWS_BUCKET_NAME", "env-bucket")
	t.Setenv("AWS_ACCESS_KEY", "env-key")
	t.Setenv("BINGO_STORE_BACKEND", "memory")
	t.Setenv("BINGO_SEED", "77")

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.AwsBucketName != "env-bucket" {
		t.Errorf("Ожидался AwsBucketName из окружения: env-bucket, получено: %s", loadedConfig.AwsBucketName)
	}
	if loadedConfig.AwsAccessKey != "env-key" {
		t.Errorf("Ожидался AwsAccessKey из окружения: env-key, получено: %s", loadedConfig.AwsAccessKey)
	}
	if loadedConfig.AwsRegion != "us-west-1" {
		t.Errorf("Ожидался AwsRegion из файла: us-west-1, получено: %s", loadedConfig.AwsRegion)
	}
	if loadedConfig.StoreBackend != "memory" {
		t.Errorf("Ожидался StoreBackend из окружения: memory, получено: %s", loadedConfig.StoreBackend)
	}
	if loadedConfig.Seed != 77 {
		t.Errorf("Ожидался Seed из окружения: 77, получено: %d", loadedConfig.Seed)
	}
}

func TestEnvVarInvalidSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINGO_SEED", "not-a-number")

	if _, err := LoadConfig("/non/existent/config.yaml"); err == nil {
		t.Error("Ожидалась ошибка при неверном BINGO_SEED")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := `store_backend: "file"
card_count: 3
invalid_field: [unclosed array
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}
}
