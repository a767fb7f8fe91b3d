package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// 会话存储后端
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
	SessionBackendMongo  = "mongo"
)

// Config 应用配置
type Config struct {
	APIBaseURL       string
	APIToken         string
	RequestTimeout   time.Duration
	SessionBackend   string
	SessionKeyPrefix string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	MongoURI         string
	MongoDB          string
	LogFile          string
	Debug            bool
}

// LoadConfig 从环境变量加载配置，存在 .env 文件时先加载
func LoadConfig() *Config {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
	}
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		APIBaseURL:       getEnv("PRODUCT_API_URL", "http://localhost:8000"),
		APIToken:         getEnv("PRODUCT_API_TOKEN", ""),
		RequestTimeout:   timeout,
		SessionBackend:   getEnv("SESSION_BACKEND", SessionBackendMemory),
		SessionKeyPrefix: getEnv("SESSION_KEY_PREFIX", "product-console:"),
		RedisAddr:        getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          redisDB,
		MongoURI:         getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:          getEnv("MONGO_DB", "product_console"),
		LogFile:          getEnv("LOG_FILE", ""),
		Debug:            getEnv("APP_MODE", "release") == "debug",
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
