package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type LogConfig struct {
	Level  string
	Format string
}

// LoanDefaults seed the command's flags.
type LoanDefaults struct {
	StartDate  time.Time
	PaidMonths int
}

type Config struct {
	Log         LogConfig
	Loan        LoanDefaults
	ServiceName string
}

// Validate reports configuration that cannot be used.
func (c Config) Validate() error {
	if c.Loan.PaidMonths < 0 {
		return fmt.Errorf("LOANENGINE_PAID_MONTHS must not be negative, got %d", c.Loan.PaidMonths)
	}
	if c.Loan.StartDate.IsZero() {
		return errors.New("LOANENGINE_START_DATE is not a valid date")
	}
	return nil
}

// Load reads configuration from the environment. now is the fallback start
// date when LOANENGINE_START_DATE is unset.
func Load(now time.Time) Config {
	return Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Loan: LoanDefaults{
			StartDate:  getEnvDate("LOANENGINE_START_DATE", now),
			PaidMonths: getEnvInt("LOANENGINE_PAID_MONTHS", 0),
		},
		ServiceName: getEnv("SERVICE_NAME", "loan-engine"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvDate parses YYYY-MM-DD. An unparsable value yields the zero time so
// that Validate can report it.
func getEnvDate(key string, fallback time.Time) time.Time {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}
	}
	return d
}
