package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	MongoURI       string
	MongoDatabase  string
	RabbitMQURI    string
	RabbitExchange string
	RedisAddr      string
	RedisPassword  string
	RedisDB        string
	LLMAPIKey      string
	LLMBaseURL     string
	LLMModel       string
	JWTSecret      string
	ServiceName    string
	ServiceVersion string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnvOrDefault("MONGO_DATABASE", "vlearn"),
		RabbitMQURI:    getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", "vlearn.events"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnvOrDefault("REDIS_PWD", ""),
		RedisDB:        getEnvOrDefault("REDIS_DB", "0"),
		LLMAPIKey:      getEnvOrDefault("LLM_API_KEY", ""),
		LLMBaseURL:     getEnvOrDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMModel:       getEnvOrDefault("LLM_MODEL", "llama-3.1-8b-instant"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		ServiceName:    getEnvOrDefault("SERVICE_NAME", "vlearn-backend"),
		ServiceVersion: getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
