package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig
	DB      DBConfig
	Stall   StallConfig
}

type StorageConfig struct {
	Backend string // "file" or "postgres"
	DataDir string // slot files live here for the file backend
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type StallConfig struct {
	Name string // printed at the top of receipts
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return &Config{
		Storage: StorageConfig{
			Backend: getEnv("POS_BACKEND", "file"),
			DataDir: getEnv("POS_DATA_DIR", "data"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "pos"),
		},
		Stall: StallConfig{
			Name: getEnv("STALL_NAME", "M² Maggie × Momos"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
