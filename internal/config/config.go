package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
	DataDir    string
	APIBaseURL string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "todopro_user"),
		DBPassword: getEnv("DB_PASSWORD", "todopro_pass"),
		DBName:     getEnv("DB_NAME", "todopro_db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DataDir:    getEnv("DATA_DIR", "./data"),
		APIBaseURL: getEnv("API_URL", "http://localhost:8080/api"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
