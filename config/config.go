// Package config loads the sky tool configuration.
//
// Values come from, lowest to highest precedence: defaults, an optional
// config file (YAML, TOML or JSON) and SKYBONDS_* environment variables, e.g.
//
//	SKYBONDS_MARKET_REPAYMENT_PERIOD=30
//	SKYBONDS_MARKET_BOND_RATING=1000
//	SKYBONDS_MARKET_CURRENCY=RUB
//	SKYBONDS_LOGGING_LEVEL=debug
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/skybonds"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding the configuration.
const EnvPrefix = "SKYBONDS"

// Config represents the complete application configuration.
type Config struct {
	Market  MarketConfig  `mapstructure:"market" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

// MarketConfig holds the bond terms shared by every lot.
type MarketConfig struct {
	RepaymentPeriod int    `mapstructure:"repayment_period" validate:"gte=0"`
	BondRating      string `mapstructure:"bond_rating" validate:"required,numeric"`
	DailyIncome     string `mapstructure:"daily_income" validate:"required,numeric"`
	Currency        string `mapstructure:"currency" validate:"required,len=3,uppercase"`
}

// LoggingConfig holds the diagnostic logger configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error err off disabled"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads the configuration. path is optional, an empty path reads
// defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("market.repayment_period", 30)
	v.SetDefault("market.bond_rating", "1000")
	v.SetDefault("market.daily_income", "1")
	v.SetDefault("market.currency", "RUB")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that all configuration values are valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if !skybonds.ValidCurrency(c.Market.Currency) {
		return fmt.Errorf("invalid config: unknown currency %q", c.Market.Currency)
	}
	return nil
}

// Terms returns the market terms.
func (c *Config) Terms() (skybonds.Terms, error) {
	rating, err := decimal.NewFromString(c.Market.BondRating)
	if err != nil || !rating.IsPositive() {
		return skybonds.Terms{}, fmt.Errorf("market.bond_rating must be a positive number, got %q", c.Market.BondRating)
	}
	income, err := decimal.NewFromString(c.Market.DailyIncome)
	if err != nil || income.IsNegative() {
		return skybonds.Terms{}, fmt.Errorf("market.daily_income must be a non negative number, got %q", c.Market.DailyIncome)
	}
	return skybonds.Terms{
		RepaymentPeriod: c.Market.RepaymentPeriod,
		BondRating:      skybonds.M(rating, c.Market.Currency),
		DailyIncome:     skybonds.M(income, c.Market.Currency),
	}, nil
}
