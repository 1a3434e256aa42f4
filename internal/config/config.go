package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	MongoURI string
	MongoDB  string

	CORSOrigins []string

	LogLevel string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		MongoURI:    envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     envOr("MONGO_DB", "quizbank"),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
