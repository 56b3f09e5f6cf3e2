package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort  string `yaml:"APP_PORT"`
	AppURL   string `yaml:"APP_URL"`
	Timezone string `yaml:"TIMEZONE"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Session tokens
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Product and recipe lookups
	OpenFoodFactsBaseURL   string `yaml:"OPENFOODFACTS_BASE_URL"`
	SpoonacularAPIKey      string `yaml:"SPOONACULAR_API_KEY"`
	SpoonacularBaseURL     string `yaml:"SPOONACULAR_BASE_URL"`
	SpoonacularSearchLimit string `yaml:"SPOONACULAR_SEARCH_LIMIT"`

	// Recipe generation
	AIProvider    string `yaml:"AI_PROVIDER"`
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL"`
	OpenAIAPIKey  string `yaml:"OPENAI_API_KEY"`
	OpenAIAPIBase string `yaml:"OPENAI_API_BASE"`
	OpenAIModel   string `yaml:"OPENAI_MODEL"`
}

var config Config

// LoadConfig reads config.yaml, then .env, then lets any non-empty
// environment variable override the yaml value.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %s\n", err)
	}

	for key, field := range config.fields() {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"APP_PORT":                 &c.AppPort,
		"APP_URL":                  &c.AppURL,
		"TIMEZONE":                 &c.Timezone,
		"DB_DRIVER":                &c.DBDriver,
		"DB_USER":                  &c.DBUser,
		"DB_NAME":                  &c.DBName,
		"DB_PASSWORD":              &c.DBPassword,
		"DB_PORT":                  &c.DBPort,
		"DB_HOST":                  &c.DBHost,
		"DB_PATH":                  &c.DBPath,
		"JWT_SECRET":               &c.JWTSecret,
		"SMTP_HOST":                &c.SMTPHost,
		"SMTP_PORT":                &c.SMTPPort,
		"SMTP_SENDER_NAME":         &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":          &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":       &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":            &c.AWSS3Bucket,
		"AWS_S3_REGION":            &c.AWSS3Region,
		"AWS_ACCESS_KEY":           &c.AWSAccessKey,
		"AWS_SECRET_KEY":           &c.AWSSecretKey,
		"OPENFOODFACTS_BASE_URL":   &c.OpenFoodFactsBaseURL,
		"SPOONACULAR_API_KEY":      &c.SpoonacularAPIKey,
		"SPOONACULAR_BASE_URL":     &c.SpoonacularBaseURL,
		"SPOONACULAR_SEARCH_LIMIT": &c.SpoonacularSearchLimit,
		"AI_PROVIDER":              &c.AIProvider,
		"GEMINI_API_KEY":           &c.GeminiAPIKey,
		"GEMINI_MODEL":             &c.GeminiModel,
		"OPENAI_API_KEY":           &c.OpenAIAPIKey,
		"OPENAI_API_BASE":          &c.OpenAIAPIBase,
		"OPENAI_MODEL":             &c.OpenAIModel,
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "TIMEZONE":
		return config.Timezone
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "OPENFOODFACTS_BASE_URL":
		return config.OpenFoodFactsBaseURL
	case "SPOONACULAR_API_KEY":
		return config.SpoonacularAPIKey
	case "SPOONACULAR_BASE_URL":
		return config.SpoonacularBaseURL
	case "SPOONACULAR_SEARCH_LIMIT":
		return config.SpoonacularSearchLimit
	case "AI_PROVIDER":
		return config.AIProvider
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "OPENAI_API_KEY":
		return config.OpenAIAPIKey
	case "OPENAI_API_BASE":
		return config.OpenAIAPIBase
	case "OPENAI_MODEL":
		return config.OpenAIModel
	default:
		return ""
	}
}

// GetConfigOr returns the value for key, or def when it is unset.
func GetConfigOr(key, def string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return def
}

// GetConfigInt returns the integer value for key, or def when it is unset or malformed.
func GetConfigInt(key string, def int) int {
	v := GetConfig(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s: %q\n", key, v)
		return def
	}
	return n
}

// SetConfig overrides a single key in memory.
func SetConfig(key, value string) {
	if field, ok := config.fields()[key]; ok {
		*field = value
	}
}
