package config

import (
	"os"
)

type Config struct {
	Port          string
	BindAddress   string
	ResetPassword string
	Timezone      string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "3000"),
		BindAddress:   getEnv("BIND_ADDRESS", "0.0.0.0"),
		ResetPassword: getEnv("RESET_PASSWORD", "RESET_ALL_DATA"),
		Timezone:      getEnv("TIMEZONE", "Asia/Kolkata"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
