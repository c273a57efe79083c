package config

import (
	"os"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string

	// Video platform search
	YouTubeAPIKey  string
	YouTubeAPIURL  string
	SearchTimeout  time.Duration
	MaxSearchItems int

	// Metadata provider
	TMDBAPIKey string
	TMDBAPIURL string

	// Batch analysis
	AnalyzeDelay time.Duration // pause between per-title searches
	AnalysisTTL  time.Duration // skip titles analyzed more recently than this

	// Admin
	AdminEmails  string
	AdminUserIDs string
	AdminToken   string

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "shortscout_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		YouTubeAPIURL:  getEnv("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3"),
		SearchTimeout:  parseDuration(getEnv("SEARCH_TIMEOUT", "10s"), 10*time.Second),
		MaxSearchItems: 50,

		TMDBAPIKey: getEnv("TMDB_API_KEY", ""),
		TMDBAPIURL: getEnv("TMDB_API_URL", "https://api.themoviedb.org/3"),

		AnalyzeDelay: parseDuration(getEnv("ANALYZE_DELAY", "1s"), time.Second),
		AnalysisTTL:  parseDuration(getEnv("ANALYSIS_TTL", "24h"), 24*time.Hour),

		AdminEmails:  getEnv("ADMIN_EMAILS", ""),
		AdminUserIDs: getEnv("ADMIN_USER_IDS", ""),
		AdminToken:   getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
