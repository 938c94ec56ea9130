package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type DonationConfig struct {
	Env           string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	DonationDB    `yaml:"donation_db"`
	Razorpay      `yaml:"razorpay"`
	Mapbox        `yaml:"mapbox"`
	SMTP          `yaml:"smtp"`
	KafkaService  `yaml:"kafka-service"`
	Notifications `yaml:"notifications"`
	Pricing       `yaml:"pricing"`
	Frontend      `yaml:"frontend"`
	Admin         `yaml:"admin"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type DonationDB struct {
	Dsn            string `yaml:"dsn" env:"DONATION_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type Razorpay struct {
	KeyID     string `yaml:"key_id" env:"RAZORPAY_KEY_ID"`
	KeySecret string `yaml:"key_secret" env:"RAZORPAY_KEY_SECRET"`
	BaseURL   string `yaml:"base_url" env:"RAZORPAY_BASE_URL" env-default:"https://api.razorpay.com"`
}

type Mapbox struct {
	AccessToken string `yaml:"access_token" env:"MAPBOX_ACCESS_TOKEN"`
	BaseURL     string `yaml:"base_url" env:"MAPBOX_BASE_URL" env-default:"https://api.mapbox.com"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.gmail.com"`
	Port     string `yaml:"port" env:"SMTP_PORT" env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASS"`
	From     string `yaml:"from" env:"SMTP_FROM"`
}

type KafkaService struct {
	Host string `yaml:"host" env:"KAFKA_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
}

type Notifications struct {
	Topic           string `yaml:"topic" env-default:"notification-events"`
	DLQTopic        string `yaml:"dlq_topic" env-default:"notification-events-dlq"`
	GroupID         string `yaml:"group_id" env-default:"donation-notifier"`
	MaxAttempts     int    `yaml:"max_attempts" env-default:"3"`
	AdminEmail      string `yaml:"admin_email" env:"ADMIN_NOTIFICATION_EMAIL"`
	SupportEmail    string `yaml:"support_email" env:"SUPPORT_EMAIL"`
	SupportWhatsApp string `yaml:"support_whatsapp" env:"SUPPORT_WHATSAPP_NUMBER"`
}

type Pricing struct {
	TreePriceINR         int64   `yaml:"tree_price_inr" env:"TREE_PRICE_INR" env-default:"99"`
	Currency             string  `yaml:"currency" env-default:"INR"`
	CarbonOffsetPerTree  float64 `yaml:"carbon_offset_per_tree_kg_per_year" env-default:"21"`
	SessionTTLHours      int     `yaml:"session_ttl_hours" env-default:"720"`
	GeocodeResultLimit   int     `yaml:"geocode_result_limit" env-default:"5"`
}

type Frontend struct {
	URL string `yaml:"url" env:"FRONTEND_URL" env-default:"https://green-campus-tracker-three.vercel.app"`
}

type Admin struct {
	APIKey string `yaml:"api_key" env:"ADMIN_API_KEY"`
}

func MustLoad() *DonationConfig {
	configPath := os.Getenv("DONATION_CONFIG_PATH")

	var cfg DonationConfig
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			log.Fatalf("failed to find config file: %v\n", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config file: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from env: %v", err)
	}

	return &cfg
}
