package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sportsdata-go/internal/platform/logging"
)

const (
	defaultSportsDataHost    = "api.sportsdata.io"
	defaultSportsDataTimeout = "100s"
)

// Config stores runtime configuration for the CLI and its tooling.
type Config struct {
	AppEnv                  string        `validate:"oneof=dev stage prod"`
	ServiceName             string        `validate:"required"`
	ServiceVersion          string        `validate:"required"`
	LogLevel                logging.Level `validate:"-"`
	SportsDataAPIKey        string
	SportsDataHost          string        `validate:"required,excludesall=/?#"`
	SportsDataScheme        string        `validate:"oneof=http https"`
	SportsDataTimeout       time.Duration `validate:"gt=0"`
	ArchiveEnabled          bool
	DBURL                   string `validate:"required_if=ArchiveEnabled true"`
	DBDisablePreparedBinary bool
	MigrationsDir           string
	UptraceEnabled          bool
	UptraceDSN              string `validate:"required_if=UptraceEnabled true"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	https, err := strconv.ParseBool(getEnv("SPORTSDATA_HTTPS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_HTTPS: %w", err)
	}
	scheme := "https"
	if !https {
		scheme = "http"
	}

	timeout, err := time.ParseDuration(getEnv("SPORTSDATA_TIMEOUT", defaultSportsDataTimeout))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_TIMEOUT: %w", err)
	}

	archiveEnabled, err := strconv.ParseBool(getEnv("ARCHIVE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ARCHIVE_ENABLED: %w", err)
	}

	disablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             strings.TrimSpace(getEnv("SERVICE_NAME", "sportsdata-cli")),
		ServiceVersion:          strings.TrimSpace(getEnv("SERVICE_VERSION", "dev")),
		LogLevel:                logging.ParseLevel(getEnv("APP_LOG_LEVEL", "warn")),
		SportsDataAPIKey:        strings.TrimSpace(getEnv("SPORTSDATA_API_KEY", "")),
		SportsDataHost:          strings.TrimSpace(getEnv("SPORTSDATA_HOST", defaultSportsDataHost)),
		SportsDataScheme:        scheme,
		SportsDataTimeout:       timeout,
		ArchiveEnabled:          archiveEnabled,
		DBURL:                   strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary: disablePreparedBinary,
		MigrationsDir:           strings.TrimSpace(getEnv("MIGRATIONS_DIR", "")),
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct constraints and reports the first failing env var.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !crerr.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return crerr.Wrap(err, "validate config")
	}

	first := fieldErrs[0]
	env := envNameByField[first.StructField()]
	if env == "" {
		env = first.StructField()
	}
	switch first.Tag() {
	case "required_if":
		return crerr.Newf("%s is required when %s", env, requiredIfReason[first.StructField()])
	case "required":
		return crerr.Newf("%s is required", env)
	default:
		return crerr.Newf("invalid %s %q: failed %s", env, fmt.Sprint(first.Value()), first.Tag())
	}
}

var envNameByField = map[string]string{
	"AppEnv":            "APP_ENV",
	"ServiceName":       "SERVICE_NAME",
	"ServiceVersion":    "SERVICE_VERSION",
	"SportsDataHost":    "SPORTSDATA_HOST",
	"SportsDataScheme":  "SPORTSDATA_HTTPS",
	"SportsDataTimeout": "SPORTSDATA_TIMEOUT",
	"DBURL":             "DB_URL",
	"UptraceDSN":        "UPTRACE_DSN",
}

var requiredIfReason = map[string]string{
	"DBURL":      "ARCHIVE_ENABLED=true",
	"UptraceDSN": "UPTRACE_ENABLED=true",
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
