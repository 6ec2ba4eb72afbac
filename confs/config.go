package confs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	// UseMemoryStorage selects the in-memory backend instead of Postgres.
	UseMemoryStorage bool

	// Either a full connection string or individual parameters.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// External language-model API.
	OpenAIKey     string
	OpenAIBaseURL string
	AIModel       string

	Port string
}

// Load reads .env if present and assembles the Config. A missing .env is not
// an error; real deployments set the environment directly.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		UseMemoryStorage: boolEnv("USE_MEMORY_STORAGE"),
		DatabaseURL:      os.Getenv("DB_URL"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           os.Getenv("DB_PORT"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		AIModel:          os.Getenv("AI_MODEL"),
		Port:             os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}

// boolEnv accepts the spellings strconv does ("1", "t", "TRUE", ...);
// anything else, including unset, is false.
func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}
