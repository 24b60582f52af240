// Package config loads service configuration from the environment and an optional .env file.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

const (
	PriceResolverList    = "list"
	PriceResolverCatalog = "catalog"
)

// Config holds every runtime setting of the API and the quotectl tool.
type Config struct {
	AppEnv           string `validate:"required"`
	Port             string `validate:"required,numeric"`
	LogLevel         string `validate:"oneof=debug info warn error"`
	LogFormat        string `validate:"oneof=json console"`
	StorageDriver    string `validate:"oneof=dynamodb memory"`
	PriceResolver    string `validate:"oneof=list catalog"`
	MetricsNamespace string `validate:"required"`
	AWS              AWSConfig
	Tables           TablesConfig
}

// AWSConfig is used only by the dynamodb storage driver. Local DynamoDB accepts any
// static credentials.
type AWSConfig struct {
	Region           string `validate:"required"`
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string `validate:"omitempty,url"`
}

type TablesConfig struct {
	Vehicles   string `validate:"required"`
	Variations string `validate:"required"`
	Options    string `validate:"required"`
	Customers  string `validate:"required"`
	Quotations string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:           valueOrDefault(k.String("APP_ENV"), "development"),
		Port:             strings.TrimPrefix(valueOrDefault(k.String("PORT"), "8080"), ":"),
		LogLevel:         strings.ToLower(valueOrDefault(k.String("LOG_LEVEL"), "info")),
		LogFormat:        strings.ToLower(valueOrDefault(k.String("LOG_FORMAT"), "json")),
		StorageDriver:    strings.ToLower(valueOrDefault(k.String("STORAGE_DRIVER"), StorageDynamoDB)),
		PriceResolver:    strings.ToLower(valueOrDefault(k.String("PRICE_RESOLVER"), PriceResolverList)),
		MetricsNamespace: valueOrDefault(k.String("METRICS_NAMESPACE"), "quotation"),
		AWS: AWSConfig{
			Region:           valueOrDefault(k.String("AWS_REGION"), "us-east-1"),
			AccessKeyID:      valueOrDefault(k.String("AWS_ACCESS_KEY_ID"), "local"),
			SecretAccessKey:  valueOrDefault(k.String("AWS_SECRET_ACCESS_KEY"), "local"),
			DynamoDBEndpoint: strings.TrimSpace(k.String("DYNAMODB_ENDPOINT")),
		},
		Tables: TablesConfig{
			Vehicles:   valueOrDefault(k.String("VEHICLES_TABLE"), "vehicles"),
			Variations: valueOrDefault(k.String("VARIATIONS_TABLE"), "vehicle_variations"),
			Options:    valueOrDefault(k.String("OPTIONS_TABLE"), "optionals"),
			Customers:  valueOrDefault(k.String("CUSTOMERS_TABLE"), "customers"),
			Quotations: valueOrDefault(k.String("QUOTATIONS_TABLE"), "quotations"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast: the service should not start with an invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, formatFieldError(e))
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath converts "Config.AWS.Region" to "aws.region".
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func valueOrDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
