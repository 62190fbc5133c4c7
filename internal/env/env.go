// Package env provides typed environment variable lookups with
// fallbacks.
package env

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given dotenv file into the
// process environment. A missing file is not an error; the getters
// simply fall back to their defaults.
func LoadEnv(filename string) {
	_ = godotenv.Load(filename)
}

// GetString returns the value of key, or fallback when unset.
func GetString(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return val
}

// GetInt returns the value of key parsed as an int, or fallback when
// unset or unparsable.
func GetInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	asInt, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return asInt
}

// GetFloat returns the value of key parsed as a float64, or fallback
// when unset or unparsable.
func GetFloat(key string, fallback float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	asFloat, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return asFloat
}

// GetBool returns the value of key parsed as a bool, or fallback when
// unset or unparsable.
func GetBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	asBool, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return asBool
}
