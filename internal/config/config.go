package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
)

// Config is the gateway configuration, built once in main and injected into
// every component. Nothing reads the environment after Load returns.
type Config struct {
	Port int `mapstructure:"PORT"`

	WhatsApp   WhatsAppConfig   `mapstructure:",squash"`
	AI         AIConfig         `mapstructure:",squash"`
	Storage    StorageConfig    `mapstructure:",squash"`
	SenderRate SenderRateConfig `mapstructure:",squash"`
}

type WhatsAppConfig struct {
	VerifyToken   string        `mapstructure:"WHATSAPP_VERIFY_TOKEN"`
	AccessToken   string        `mapstructure:"WHATSAPP_ACCESS_TOKEN"`
	PhoneNumberID string        `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	BusinessPhone string        `mapstructure:"WHATSAPP_BUSINESS_PHONE"`
	APIURL        string        `mapstructure:"WHATSAPP_API_URL"`
	CountryPrefix string        `mapstructure:"COUNTRY_PREFIX"`
	MaxMessageAge time.Duration `mapstructure:"MESSAGE_MAX_AGE"`
	SendTimeout   time.Duration `mapstructure:"WHATSAPP_TIMEOUT"`
	Mock          bool          `mapstructure:"WHATSAPP_MOCK"`
}

// AIConfig configures the OpenAI-compatible assistant. The assistant is
// considered unavailable when APIKey is empty and Mock is false.
type AIConfig struct {
	APIKey           string        `mapstructure:"AI_API_KEY"`
	BaseURL          string        `mapstructure:"AI_BASE_URL"`
	Model            string        `mapstructure:"AI_MODEL"`
	MaxContextTokens int           `mapstructure:"AI_MAX_CONTEXT_TOKENS"`
	MaxTokens        int           `mapstructure:"AI_MAX_TOKENS"`
	Timeout          time.Duration `mapstructure:"AI_TIMEOUT"`
	Mock             bool          `mapstructure:"AI_MOCK"`
}

type StorageConfig struct {
	Backend          string `mapstructure:"DIRECTORY_BACKEND"`
	PostgresDSN      string `mapstructure:"POSTGRES_DSN"`
	ProfilesTable    string `mapstructure:"PROFILES_TABLE"`
	OrdersTable      string `mapstructure:"SERVICE_ORDERS_TABLE"`
	CommissionsTable string `mapstructure:"COMMISSIONS_TABLE"`
	PayablesTable    string `mapstructure:"PAYABLES_TABLE"`
	ClientsTable     string `mapstructure:"CLIENTS_TABLE"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	// DynamoDBEndpoint points the client at dynamodb-local; empty uses AWS.
	DynamoDBEndpoint string `mapstructure:"DYNAMODB_ENDPOINT"`
}

// SenderRateConfig is the optional per-sender burst monitor. It only feeds a
// metric. Empty RedisAddr disables it.
type SenderRateConfig struct {
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	Limit         int           `mapstructure:"SENDER_RATE_LIMIT"`
	Window        time.Duration `mapstructure:"SENDER_RATE_WINDOW"`
}

var ErrInvalidBackend = errors.New("invalid DIRECTORY_BACKEND")

var knownKeys = []string{
	"PORT",
	"WHATSAPP_VERIFY_TOKEN", "WHATSAPP_ACCESS_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_BUSINESS_PHONE",
	"WHATSAPP_API_URL", "COUNTRY_PREFIX", "MESSAGE_MAX_AGE", "WHATSAPP_TIMEOUT", "WHATSAPP_MOCK",
	"AI_API_KEY", "AI_BASE_URL", "AI_MODEL", "AI_MAX_CONTEXT_TOKENS", "AI_MAX_TOKENS", "AI_TIMEOUT", "AI_MOCK",
	"DIRECTORY_BACKEND", "POSTGRES_DSN", "PROFILES_TABLE", "SERVICE_ORDERS_TABLE", "COMMISSIONS_TABLE",
	"PAYABLES_TABLE", "CLIENTS_TABLE",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"REDIS_ADDR", "REDIS_PASSWORD", "SENDER_RATE_LIMIT", "SENDER_RATE_WINDOW",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)

	v.SetDefault("WHATSAPP_API_URL", "https://graph.facebook.com/v21.0")
	v.SetDefault("COUNTRY_PREFIX", "55")
	v.SetDefault("MESSAGE_MAX_AGE", 5*time.Minute)
	v.SetDefault("WHATSAPP_TIMEOUT", 15*time.Second)
	v.SetDefault("WHATSAPP_MOCK", false)

	v.SetDefault("AI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("AI_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_MAX_CONTEXT_TOKENS", 1500)
	v.SetDefault("AI_MAX_TOKENS", 400)
	v.SetDefault("AI_TIMEOUT", 30*time.Second)
	v.SetDefault("AI_MOCK", false)

	v.SetDefault("DIRECTORY_BACKEND", BackendDynamoDB)
	v.SetDefault("PROFILES_TABLE", "profiles")
	v.SetDefault("SERVICE_ORDERS_TABLE", "service_orders")
	v.SetDefault("COMMISSIONS_TABLE", "commissions")
	v.SetDefault("PAYABLES_TABLE", "payables")
	v.SetDefault("CLIENTS_TABLE", "clients")
	// dynamodb-local does not validate credentials, but the SDK requires them.
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")

	v.SetDefault("SENDER_RATE_LIMIT", 20)
	v.SetDefault("SENDER_RATE_WINDOW", time.Minute)
}

// Load reads config.yaml (optional, from . or ./configs) and the environment.
// Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults(v)
	// AutomaticEnv only resolves keys viper already knows about during Unmarshal.
	for _, key := range knownKeys {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Printf("[config] config.yaml not found; using defaults and environment variables")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	c.WhatsApp.APIURL = strings.TrimRight(strings.TrimSpace(c.WhatsApp.APIURL), "/")
	c.AI.BaseURL = strings.TrimRight(strings.TrimSpace(c.AI.BaseURL), "/")
	c.WhatsApp.VerifyToken = strings.TrimSpace(c.WhatsApp.VerifyToken)
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendDynamoDB, BackendPostgres:
	default:
		return ErrInvalidBackend
	}
	if c.Storage.Backend == BackendPostgres && strings.TrimSpace(c.Storage.PostgresDSN) == "" {
		return errors.New("POSTGRES_DSN is required for the postgres backend")
	}
	if c.AI.Mock && !c.AI.MockActive() {
		log.Printf("[config] AI_MOCK ignored because AI_API_KEY is set")
	}
	if c.AI.MockActive() {
		log.Printf("[config] WARNING AI_MOCK is on; free-form questions get canned answers")
	}
	if c.WhatsApp.VerifyToken == "" {
		log.Printf("[config] WHATSAPP_VERIFY_TOKEN is empty; webhook verification will always be rejected")
	}
	return nil
}

// AssistantAvailable reports whether the AI fallback may be attempted.
func (c AIConfig) AssistantAvailable() bool {
	return strings.TrimSpace(c.APIKey) != "" || c.MockActive()
}

// MockActive reports whether canned answers replace the real API. A
// configured API key always wins over AI_MOCK.
func (c AIConfig) MockActive() bool {
	return c.Mock && strings.TrimSpace(c.APIKey) == ""
}

// MonitorEnabled reports whether a Redis address was configured.
func (c SenderRateConfig) MonitorEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
