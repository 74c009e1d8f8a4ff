package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Address        string
	Port           int
	MongoURI       string
	DatabaseName   string
	JWTSecret      string
	AdminSecretKey string
	TokenHeader    string
}

// Load reads configuration from the environment. Development defaults exist
// for every value except the secrets, which must be set explicitly when
// APP_ENV=production.
func Load() (*Config, error) {
	_ = godotenv.Load()

	production := os.Getenv("APP_ENV") == "production"

	portStr := getEnv("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.New("invalid PORT value")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		if production {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		jwtSecret = "dev_jwt_secret"
	}

	adminSecretKey := os.Getenv("ADMIN_SECRET_KEY")
	if adminSecretKey == "" {
		if production {
			return nil, errors.New("ADMIN_SECRET_KEY must be set in production")
		}
		adminSecretKey = "dev_admin_secret"
	}

	return &Config{
		Address:        getEnv("ADDRESS", "0.0.0.0"),
		Port:           port,
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("DATABASE_NAME", "hosteldesk"),
		JWTSecret:      jwtSecret,
		AdminSecretKey: adminSecretKey,
		TokenHeader:    getEnv("TOKEN_HEADER", "x-token"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
