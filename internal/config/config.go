// Package config loads the crossword engine's environment-driven
// configuration, following the teacher's godotenv-then-getenv pattern.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI and its subcommands need to locate
// the corpus, pick defaults, and reach the archive database. Flags
// passed on the command line override these values; these values
// override the built-in defaults.
type Config struct {
	CorpusDir         string
	ArchiveDBPath     string
	DefaultSize       int
	DefaultDifficulty string
	RandSeed          int64 // 0 means "unseeded"
}

// Load reads a .env file if present (missing is not an error, matching
// cmd/server's "no .env file found, using environment variables"
// behavior) and populates Config from the environment, falling back to
// defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	seed, _ := strconv.ParseInt(getEnv("CROSSWORD_RAND_SEED", "0"), 10, 64)
	size, _ := strconv.Atoi(getEnv("CROSSWORD_DEFAULT_SIZE", "15"))

	return Config{
		CorpusDir:         getEnv("CROSSWORD_CORPUS_DIR", "./corpus"),
		ArchiveDBPath:     getEnv("CROSSWORD_ARCHIVE_DB", "./crossword_archive.db"),
		DefaultSize:       size,
		DefaultDifficulty: getEnv("CROSSWORD_DEFAULT_DIFFICULTY", "medium"),
		RandSeed:          seed,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
