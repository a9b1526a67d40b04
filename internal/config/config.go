package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort string
	ServerEnv  string

	// MongoDB
	MongoURI      string
	MongoDatabase string

	// Session token (issued after the Firebase handoff)
	JWTSecretKey    string
	SessionTokenTTL time.Duration

	// Firebase (identity provider)
	FirebaseCredentialsJSON string
	FirebaseCredentialsPath string

	// Google Places
	GooglePlacesAPIKey string
	SearchRadiusMeters int
	SearchLanguage     string
	// CursorSettleDelay is how long to wait before using a freshly issued
	// next_page_token. The provider rejects the token until it settles;
	// this is their timing contract, so it stays configurable.
	CursorSettleDelay time.Duration

	// Yelp
	YelpAPIKey string

	// Geocoding
	NominatimBaseURL string

	// SigNoz / OTLP collector
	SigNozEndpoint string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),

		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDatabase: getEnv("MONGODB_DATABASE", "dinesaver"),

		JWTSecretKey:    getEnv("JWT_SECRET", ""),
		SessionTokenTTL: getEnvAsDuration("SESSION_TOKEN_TTL", time.Hour),

		FirebaseCredentialsJSON: getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),

		GooglePlacesAPIKey: getEnv("GOOGLE_PLACES_API_KEY", ""),
		SearchRadiusMeters: getEnvAsInt("SEARCH_RADIUS_METERS", 5000),
		SearchLanguage:     getEnv("SEARCH_LANGUAGE", "ja"),
		CursorSettleDelay:  getEnvAsDuration("CURSOR_SETTLE_DELAY", 2*time.Second),

		YelpAPIKey: getEnv("YELP_API_KEY", ""),

		NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),

		SigNozEndpoint: getEnv("SIGNOZ_ENDPOINT", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
