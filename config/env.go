package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Shop   ShopConfig
	Auth   AuthConfig
	Events EventsConfig
}

type ServerConfig struct {
	Addr      string
	RateLimit string
}

type ShopConfig struct {
	Name            string
	Tagline         string
	ABN             string
	Phone           string
	Email           string
	Website         string
	DefaultLocation string
	Locations       map[string]string
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type EventsConfig struct {
	Enabled bool
	Redis   RedisConfig
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	eventsEnabled, _ := strconv.ParseBool(getEnv("EVENTS_ENABLED", "false"))
	tokenTTLHours, _ := strconv.Atoi(getEnv("AUTH_TOKEN_TTL_HOURS", "12"))

	return Config{
		Server: ServerConfig{
			Addr:      getEnv("SERVER_ADDR", ":8080"),
			RateLimit: getEnv("RATE_LIMIT", "60-M"),
		},
		Shop: ShopConfig{
			Name:            getEnv("SHOP_NAME", "PHONE MECHANIC"),
			Tagline:         getEnv("SHOP_TAGLINE", "Technology Specialists"),
			ABN:             getEnv("SHOP_ABN", "12 345 678 901"),
			Phone:           getEnv("SHOP_PHONE", "(02) 9999 8888"),
			Email:           getEnv("SHOP_EMAIL", "support@phonemechanic.com.au"),
			Website:         getEnv("SHOP_WEBSITE", "www.phonemechanic.com.au"),
			DefaultLocation: getEnv("SHOP_DEFAULT_LOCATION", "Eastwood"),
			Locations: map[string]string{
				"Eastwood":   "123 Rowe Street, Eastwood NSW 2122",
				"Parramatta": "456 Church St, Parramatta NSW 2150",
			},
		},
		Auth: AuthConfig{
			Secret:   getEnv("AUTH_SECRET", "152fe54a-ac31-4d3c-b94b-6135cc25c55a"),
			TokenTTL: time.Duration(tokenTTLHours) * time.Hour,
		},
		Events: EventsConfig{
			Enabled: eventsEnabled,
			Redis: RedisConfig{
				Host:     getEnv("REDIS_HOST", "localhost"),
				Port:     getEnv("REDIS_PORT", "6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       redisDB,
			},
		},
	}
}

// Address resolves a shop location name to its street address. Unknown
// locations fall back to the default location's address.
func (s ShopConfig) Address(location string) string {
	if addr, ok := s.Locations[location]; ok {
		return addr
	}
	return s.Locations[s.DefaultLocation]
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
