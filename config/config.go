package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AppName  string `mapstructure:"APP_NAME"`
	Port     int    `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// WhatsApp Cloud API
	WhatsAppVerifyToken   string        `mapstructure:"WHATSAPP_VERIFY_TOKEN"`
	WhatsAppToken         string        `mapstructure:"WHATSAPP_TOKEN"`
	WhatsAppPhoneNumberID string        `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppAPIBaseURL    string        `mapstructure:"WHATSAPP_API_BASE_URL"`
	ExternalCallTimeout   time.Duration `mapstructure:"EXTERNAL_CALL_TIMEOUT"`

	// Ordering
	TaxRate  float64       `mapstructure:"TAX_RATE"`
	StateTTL time.Duration `mapstructure:"STATE_TTL"`
	CartTTL  time.Duration `mapstructure:"CART_TTL"`
	DedupTTL time.Duration `mapstructure:"DEDUP_TTL"`
	OrderTTL time.Duration `mapstructure:"ORDER_TTL"`

	// Storage: "dynamodb" or "memory"
	StoreBackend string `mapstructure:"STORE_BACKEND"`

	// Payments
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`

	// Receipt OCR
	OmniAPIKey     string `mapstructure:"OMNI_API_KEY"`
	OmniTemplateID string `mapstructure:"OMNI_TEMPLATE_ID"`
	OmniBaseURL    string `mapstructure:"OMNI_BASE_URL"`

	// Event bus
	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	OrderExchange string `mapstructure:"ORDER_EXCHANGE"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "dokalbot")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("WHATSAPP_VERIFY_TOKEN", "")
	viper.SetDefault("WHATSAPP_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_API_BASE_URL", "")
	viper.SetDefault("EXTERNAL_CALL_TIMEOUT", 10*time.Second)

	viper.SetDefault("TAX_RATE", 0.08)
	viper.SetDefault("STATE_TTL", 24*time.Hour)
	viper.SetDefault("CART_TTL", 24*time.Hour)
	viper.SetDefault("DEDUP_TTL", 24*time.Hour)
	viper.SetDefault("ORDER_TTL", 30*24*time.Hour)

	viper.SetDefault("STORE_BACKEND", "dynamodb")

	viper.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")

	viper.SetDefault("OMNI_API_KEY", "")
	viper.SetDefault("OMNI_TEMPLATE_ID", "")
	viper.SetDefault("OMNI_BASE_URL", "")

	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ORDER_EXCHANGE", "orders")

	if err = viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Info().Msg("No config file found, using environment variables and defaults.")
		err = nil
	} else {
		log.Error().Err(err).Msg("Error reading config file")
		return
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to decode into struct")
	}

	return
}
