package configs

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is the placeholder signing key used when JWT_SECRET is unset.
const DefaultJWTSecret = "changeme"

// ErrDefaultJWTSecret is returned by CheckSecrets outside development.
var ErrDefaultJWTSecret = errors.New("JWT_SECRET is unset or uses the default value; set a private signing key")

type Config struct {
	// "development" or "production"
	AppEnv string

	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	// image store: "local" or "s3"
	ImageStore      string
	UploadDir       string
	PublicBaseURL   string
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string
	MaxImageBytes   int64

	// "permissive" (any status to any status) or "forward"
	OrderStatusPolicy string

	Locale         string
	CurrencySymbol string
	TimeZone       string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "eatery.db")
	v.SetDefault("PORT", "8000")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("IMAGE_STORE", "local")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_PUBLIC_BASE_URL", "")
	v.SetDefault("MAX_IMAGE_BYTES", 5*1024*1024) // 5 MiB
	v.SetDefault("ORDER_STATUS_POLICY", "permissive")
	v.SetDefault("LOCALE", "en-IN")
	v.SetDefault("CURRENCY_SYMBOL", "₹")
	v.SetDefault("TIMEZONE", "Local")
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment only")
	}
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	ttl := v.GetDuration("JWT_TTL")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	maxImage := v.GetInt64("MAX_IMAGE_BYTES")
	if maxImage <= 0 {
		maxImage = 5 * 1024 * 1024
	}
	return &Config{
		AppEnv:            strings.ToLower(v.GetString("APP_ENV")),
		DBDriver:          v.GetString("DB_DRIVER"),
		DBSource:          v.GetString("DB_SOURCE"),
		Port:              v.GetString("PORT"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTTTL:            ttl,
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),
		ImageStore:        strings.ToLower(v.GetString("IMAGE_STORE")),
		UploadDir:         v.GetString("UPLOAD_DIR"),
		PublicBaseURL:     strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		S3Bucket:          v.GetString("S3_BUCKET"),
		S3Region:          v.GetString("S3_REGION"),
		S3PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
		MaxImageBytes:     maxImage,
		OrderStatusPolicy: strings.ToLower(v.GetString("ORDER_STATUS_POLICY")),
		Locale:            v.GetString("LOCALE"),
		CurrencySymbol:    v.GetString("CURRENCY_SYMBOL"),
		TimeZone:          v.GetString("TIMEZONE"),
	}
}

// CheckSecrets refuses the default or an empty JWT secret unless AppEnv is
// development, where it only logs a warning.
func (c *Config) CheckSecrets() error {
	if c.JWTSecret != "" && c.JWTSecret != DefaultJWTSecret {
		return nil
	}
	if c.AppEnv == "" || c.AppEnv == "development" || c.AppEnv == "dev" {
		log.Println("⚠️  JWT_SECRET is unset or default; tokens are forgeable. Do not run this outside development")
		return nil
	}
	return ErrDefaultJWTSecret
}

// Location resolves TimeZone, falling back to the server's local zone.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Printf("unknown TIMEZONE %q, using local: %v", c.TimeZone, err)
		return time.Local
	}
	return loc
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
