package config

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr string `mapstructure:"SERVER_ADDR"`
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`

	// MySQL configuration
	DBDSN string `mapstructure:"DB_DSN"`

	// Sale engine configuration
	TaxRate          float64 `mapstructure:"TAX_RATE"` // fraction, e.g. 0.075
	SaleNumberPrefix string  `mapstructure:"SALE_NUMBER_PREFIX"`

	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AllowRegistration bool   `mapstructure:"ALLOW_REGISTRATION"`
}

// TaxRateDecimal returns the deployment tax rate as a decimal fraction.
func (c Config) TaxRateDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.TaxRate)
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	viper.SetDefault("DB_DSN", "")
	viper.SetDefault("TAX_RATE", 0.075)
	viper.SetDefault("SALE_NUMBER_PREFIX", "BD")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ALLOW_REGISTRATION", false)

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info().Msg("No config file found, using environment variables and defaults.")
			err = nil
		} else {
			log.Error().Err(err).Msg("Error reading config file")
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
