package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Rows         int
	Columns      int
	SearchDepth  int
	HumanFirst   bool
	KafkaBrokers []string
	KafkaTopic   string
}

var AppConfig *Config

func LoadConfig() *Config {
	rows := GetEnvAsInt("BOARD_ROWS", 8)
	columns := GetEnvAsInt("BOARD_COLUMNS", 8)
	depth := GetEnvAsInt("SEARCH_DEPTH", 7)
	humanFirst := GetEnvAsBool("HUMAN_FIRST", true)

	// Analytics (disabled when no brokers are configured)
	var brokers []string
	if brokersStr := GetEnv("KAFKA_BROKERS", ""); brokersStr != "" {
		for _, broker := range strings.Split(brokersStr, ",") {
			trimmed := strings.TrimSpace(broker)
			if trimmed != "" {
				brokers = append(brokers, trimmed)
			}
		}
	}
	topic := GetEnv("KAFKA_TOPIC", "game-events")

	AppConfig = &Config{
		Rows:         rows,
		Columns:      columns,
		SearchDepth:  depth,
		HumanFirst:   humanFirst,
		KafkaBrokers: brokers,
		KafkaTopic:   topic,
	}

	return AppConfig
}

// Validate rejects settings the engine cannot play with.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.Rows, c.Columns)
	}
	if c.SearchDepth < 0 {
		return fmt.Errorf("search depth must not be negative, got %d", c.SearchDepth)
	}
	return nil
}

func (c *Config) AnalyticsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
