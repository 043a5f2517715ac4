package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	BankName              string
	StartingAccountNumber int64
	MaxLoginAttempts      int
	HashPasswords         bool
	IsProduction          bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every value has a working default; the program runs with no
// environment at all.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("BANK_NAME", "ABC Bank")
	viper.SetDefault("STARTING_ACCOUNT_NUMBER", int64(1001))
	viper.SetDefault("MAX_LOGIN_ATTEMPTS", 3)
	viper.SetDefault("HASH_PASSWORDS", false)
	viper.SetDefault("IS_PRODUCTION", false)

	viper.AutomaticEnv()

	cfg := &Config{
		BankName:              viper.GetString("BANK_NAME"),
		StartingAccountNumber: viper.GetInt64("STARTING_ACCOUNT_NUMBER"),
		MaxLoginAttempts:      viper.GetInt("MAX_LOGIN_ATTEMPTS"),
		HashPasswords:         viper.GetBool("HASH_PASSWORDS"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
	}

	if cfg.StartingAccountNumber < 1 {
		log.Printf("Warning: STARTING_ACCOUNT_NUMBER (%d) is not positive. Defaulting to 1001.\n", cfg.StartingAccountNumber)
		cfg.StartingAccountNumber = 1001
	}

	if cfg.MaxLoginAttempts < 1 {
		log.Printf("Warning: MAX_LOGIN_ATTEMPTS (%d) is not positive. Defaulting to 3.\n", cfg.MaxLoginAttempts)
		cfg.MaxLoginAttempts = 3
	}

	return cfg, nil
}
