package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Game holds the externally supplied game configuration. All values are
// read-only after LoadGame; the core never mutates them.
type Game struct {
	// Delay between each drawn number
	DrawInterval time.Duration
	// Inclusive bingo number range (1-75 is standard)
	MinNumber int
	MaxNumber int
	// Fraction of the pool retained by the house before splitting prizes
	HousePercentage float64
	Port            string
}

func LoadGame() *Game {
	cfg := &Game{
		DrawInterval:    time.Duration(envInt("BINGO_DRAW_DELAY_MS", 3000)) * time.Millisecond,
		MinNumber:       envInt("BINGO_MIN_NUMBER", 1),
		MaxNumber:       envInt("BINGO_MAX_NUMBER", 75),
		HousePercentage: envFloat("HOUSE_PERCENTAGE", 0.10),
		Port:            os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MaxNumber < cfg.MinNumber {
		log.Printf("[CONFIG-WARN] Invalid number range %d-%d, using 1-75", cfg.MinNumber, cfg.MaxNumber)
		cfg.MinNumber, cfg.MaxNumber = 1, 75
	}
	return cfg
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[CONFIG-WARN] %s=%q is not an integer, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("[CONFIG-WARN] %s=%q is not a number, using %g", key, raw, fallback)
		return fallback
	}
	return v
}
