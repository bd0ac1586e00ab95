package config

import (
	"fmt"
	"os"
)

// Config contient toute la configuration du serveur, chargée depuis l'environnement
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// RedisAddr est optionnel : vide = pas de cache leaderboard
	RedisAddr string

	// MeterHasElectrical indique si les compteurs remontent les colonnes
	// électriques (tension, courant, fréquence) en plus du kWh
	MeterHasElectrical bool
}

// LoadConfig charge la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getEnv("DB_NAME", "ecoenergy"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		MeterHasElectrical: os.Getenv("METER_HAS_ELECTRICAL") == "true",
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
