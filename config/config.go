package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"hexagon/meta"
)

type Config struct {
	LogLevel string
	DataDir  string
	MaxTurns int
	Seed     uint64
	Games    int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

// Load reads an optional .env file, then the HEXAGON_* environment variables.
// Variables already set in the environment win over the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		LogLevel: getenv("HEXAGON_LOG_LEVEL", "info"),
		DataDir:  getenv("HEXAGON_DATA_DIR", "."),
		MaxTurns: getenvInt("HEXAGON_MAX_TURNS", meta.MAX_TURNS),
		Seed:     uint64(getenvInt("HEXAGON_SEED", 1)),
		Games:    getenvInt("HEXAGON_GAMES", 10),
	}
}
