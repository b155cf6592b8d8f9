package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB. DatabaseURL wins over the DB_* parts when set.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`
	DBUser       string `mapstructure:"DB_USER"`
	DBPass       string `mapstructure:"DB_PASS"`
	DBHost       string `mapstructure:"DB_HOST"`

	// Stripe.
	StripeKey       string `mapstructure:"STRIPE_SECRET_KEY"`
	PaymentCurrency string `mapstructure:"PAYMENT_CURRENCY"`

	// Firebase service account, either a file path or the raw JSON.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseServiceAccount  string `mapstructure:"FIREBASE_SERVICE_ACCOUNT"`

	// Cloudinary image mirror (optional).
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `mapstructure:"CLOUDINARY_FOLDER"`

	MaxUploadMB    int64  `mapstructure:"MAX_UPLOAD_MB"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("PORT", "")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_NAME", "lustrioData")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "localhost:27017")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	v.SetDefault("FIREBASE_SERVICE_ACCOUNT", "")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("CLOUDINARY_FOLDER", "lustrio/hotels")
	v.SetDefault("MAX_UPLOAD_MB", 8)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("ALLOWED_ORIGINS", "*")
}

// LoadConfig reads config.yaml from the current or ./config directory when
// present, then lets environment variables override it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load config: %w", err)
	}
	return &cfg, nil
}

// ListenPort returns PORT when the platform sets it, APP_PORT otherwise.
func (c *Config) ListenPort() string {
	if c.Port != "" {
		return c.Port
	}
	if c.AppPort != "" {
		return c.AppPort
	}
	return "8000"
}

// MongoURI returns DATABASE_URL, or builds a URI from the DB_* parts.
func (c *Config) MongoURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBUser == "" {
		return "mongodb://" + c.DBHost
	}
	scheme := "mongodb"
	if !strings.Contains(c.DBHost, ":") {
		// Atlas style host without port uses SRV records.
		scheme = "mongodb+srv"
	}
	return fmt.Sprintf("%s://%s:%s@%s/?retryWrites=true&w=majority",
		scheme, url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPass), c.DBHost)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 8 << 20
	}
	return c.MaxUploadMB << 20
}

func (c *Config) StripeEnabled() bool {
	return c.StripeKey != ""
}

func (c *Config) FirebaseEnabled() bool {
	return c.FirebaseCredentialsFile != "" || c.FirebaseServiceAccount != ""
}

func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
