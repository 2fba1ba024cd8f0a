package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultCluster = "cluster0.zxert.mongodb.net"

var ErrNoDatabase = errors.New("set MONGO_URI or DB_USER and DB_PASS")

type Config struct {
	Port                   string
	MongoURI               string
	MongoDatabase          string
	FirebaseServiceAccount string
	JWTSecret              string
	StripeSecret           string
	CORSOrigins            []string
	LogLevel               slog.Level
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
		if user == "" || pass == "" {
			return nil, ErrNoDatabase
		}
		mongoURI = atlasURI(user, pass, getEnv("MONGO_CLUSTER", defaultCluster))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Port:                   getEnv("PORT", "5000"),
		MongoURI:               mongoURI,
		MongoDatabase:          getEnv("MONGO_DATABASE", "doctors_portal"),
		FirebaseServiceAccount: os.Getenv("FIREBASE_SERVICE_ACCOUNT"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		StripeSecret:           os.Getenv("STRIPE_SECRET"),
		CORSOrigins:            splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:               level,
	}

	return cfg, nil
}

func atlasURI(user, pass, cluster string) string {
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     cluster,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AllowAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSOrigins) == 0
}
