package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "sheetreport/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Security  SecurityConfig  `yaml:"security" envconfig:"SECURITY"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Events    EventsConfig    `yaml:"events" envconfig:"EVENTS"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" envconfig:"MAX_HEADER_BYTES" default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT" default:"30s" validate:"gt=0"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080" validate:"min=1"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// PathsConfig contains file system paths configuration. Relative paths are
// resolved against the working directory.
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"output" validate:"required"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs" validate:"required"`
}

// ReportConfig names the workbooks read by the report API.
type ReportConfig struct {
	ProductsFile        string `yaml:"products_file" envconfig:"PRODUCTS_FILE" default:"products.xlsx" validate:"required"`
	StudentsFile        string `yaml:"students_file" envconfig:"STUDENTS_FILE" default:"students.xlsx" validate:"required"`
	EmployeesFile       string `yaml:"employees_file" envconfig:"EMPLOYEES_FILE" default:"employees.xlsx" validate:"required"`
	HighSalaryThreshold string `yaml:"high_salary_threshold" envconfig:"HIGH_SALARY_THRESHOLD" default:"80000" validate:"numeric"`
}

// EventsConfig configures report event publishing. No brokers disables it.
type EventsConfig struct {
	Brokers      []string      `yaml:"brokers" envconfig:"BROKERS"`
	Topic        string        `yaml:"topic" envconfig:"TOPIC" default:"report-events" validate:"required"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"10s"`
}

// Enabled reports whether any broker is configured.
func (e EventsConfig) Enabled() bool {
	return len(e.Brokers) > 0
}

// TelemetryConfig configures OpenTelemetry
type TelemetryConfig struct {
	ServiceName    string `yaml:"service_name" envconfig:"SERVICE_NAME" default:"sheetreport"`
	Environment    string `yaml:"environment" envconfig:"ENVIRONMENT" default:"development"`
	TracingEnabled bool   `yaml:"tracing_enabled" envconfig:"TRACING_ENABLED" default:"false"`
	MetricsEnabled bool   `yaml:"metrics_enabled" envconfig:"METRICS_ENABLED" default:"true"`
}

// Load loads configuration from a .env file, the config file named by
// SHEETREPORT_CONFIG_FILE (or the first one found in the usual locations) and
// environment variables. Environment variables take precedence over the file.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv(EnvPrefix+"_CONFIG_FILE"), DefaultEnvFile)
}

// LoadFrom is Load with an explicit config file and .env file. Either may be
// empty; a missing .env file is ignored.
func LoadFrom(configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewConfigError("failed to load env file", err).WithContext("path", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).WithContext("path", configFile)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays file values on envConfig for every setting whose
// environment variable is unset.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merge("SERVER_PORT", fileConfig.Server.Port, &envConfig.Server.Port)
	merge("SERVER_READ_TIMEOUT", fileConfig.Server.ReadTimeout, &envConfig.Server.ReadTimeout)
	merge("SERVER_WRITE_TIMEOUT", fileConfig.Server.WriteTimeout, &envConfig.Server.WriteTimeout)
	merge("SERVER_IDLE_TIMEOUT", fileConfig.Server.IdleTimeout, &envConfig.Server.IdleTimeout)
	merge("SERVER_MAX_HEADER_BYTES", fileConfig.Server.MaxHeaderBytes, &envConfig.Server.MaxHeaderBytes)
	merge("SERVER_SHUTDOWN_TIMEOUT", fileConfig.Server.ShutdownTimeout, &envConfig.Server.ShutdownTimeout)
	merge("SERVER_REQUEST_TIMEOUT", fileConfig.Server.RequestTimeout, &envConfig.Server.RequestTimeout)

	mergeSlice("SECURITY_ALLOWED_ORIGINS", fileConfig.Security.AllowedOrigins, &envConfig.Security.AllowedOrigins)
	merge("SECURITY_RATE_LIMIT_RPS", fileConfig.Security.RateLimit.RPS, &envConfig.Security.RateLimit.RPS)
	merge("SECURITY_RATE_LIMIT_BURST", fileConfig.Security.RateLimit.Burst, &envConfig.Security.RateLimit.Burst)

	merge("LOGGING_LEVEL", fileConfig.Logging.Level, &envConfig.Logging.Level)
	merge("LOGGING_OUTPUT", fileConfig.Logging.Output, &envConfig.Logging.Output)
	merge("LOGGING_FILE_PATH", fileConfig.Logging.FilePath, &envConfig.Logging.FilePath)

	merge("PATHS_DATA_DIR", fileConfig.Paths.DataDir, &envConfig.Paths.DataDir)
	merge("PATHS_OUTPUT_DIR", fileConfig.Paths.OutputDir, &envConfig.Paths.OutputDir)
	merge("PATHS_LOGS_DIR", fileConfig.Paths.LogsDir, &envConfig.Paths.LogsDir)

	merge("REPORT_PRODUCTS_FILE", fileConfig.Report.ProductsFile, &envConfig.Report.ProductsFile)
	merge("REPORT_STUDENTS_FILE", fileConfig.Report.StudentsFile, &envConfig.Report.StudentsFile)
	merge("REPORT_EMPLOYEES_FILE", fileConfig.Report.EmployeesFile, &envConfig.Report.EmployeesFile)
	merge("REPORT_HIGH_SALARY_THRESHOLD", fileConfig.Report.HighSalaryThreshold, &envConfig.Report.HighSalaryThreshold)

	mergeSlice("EVENTS_BROKERS", fileConfig.Events.Brokers, &envConfig.Events.Brokers)
	merge("EVENTS_TOPIC", fileConfig.Events.Topic, &envConfig.Events.Topic)
	merge("EVENTS_WRITE_TIMEOUT", fileConfig.Events.WriteTimeout, &envConfig.Events.WriteTimeout)

	merge("TELEMETRY_SERVICE_NAME", fileConfig.Telemetry.ServiceName, &envConfig.Telemetry.ServiceName)
	merge("TELEMETRY_ENVIRONMENT", fileConfig.Telemetry.Environment, &envConfig.Telemetry.Environment)

	// Booleans cannot signal "unset" in YAML, so the file only switches them on.
	mergeFlag("SECURITY_ENABLE_CORS", fileConfig.Security.EnableCORS, &envConfig.Security.EnableCORS)
	mergeFlag("SECURITY_RATE_LIMIT_ENABLED", fileConfig.Security.RateLimit.Enabled, &envConfig.Security.RateLimit.Enabled)
	mergeFlag("TELEMETRY_TRACING_ENABLED", fileConfig.Telemetry.TracingEnabled, &envConfig.Telemetry.TracingEnabled)
	mergeFlag("TELEMETRY_METRICS_ENABLED", fileConfig.Telemetry.MetricsEnabled, &envConfig.Telemetry.MetricsEnabled)

	return envConfig
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + key)
	return ok
}

func merge[T comparable](key string, fileVal T, dst *T) {
	var zero T
	if fileVal != zero && !envSet(key) {
		*dst = fileVal
	}
}

func mergeSlice[T any](key string, fileVal []T, dst *[]T) {
	if len(fileVal) > 0 && !envSet(key) {
		*dst = fileVal
	}
}

func mergeFlag(key string, fileVal bool, dst *bool) {
	if fileVal && !envSet(key) {
		*dst = true
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate validates the configuration
func (c *Config) validate() error {
	// JSON is the only supported log format.
	c.Logging.Format = "json"

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid %s: failed %q check (value %v)", first.Namespace(), first.Tag(), first.Value())
		}
		return err
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging output %q requires a file path", c.Logging.Output)
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"sheetreport.yaml",
		"configs/sheetreport.yaml",
		"../configs/sheetreport.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20, // 1MB
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Paths: PathsConfig{
			DataDir:   DefaultDataDir,
			OutputDir: DefaultOutputDir,
			LogsDir:   DefaultLogsDir,
		},
		Report: ReportConfig{
			ProductsFile:        DefaultProductsFile,
			StudentsFile:        DefaultStudentsFile,
			EmployeesFile:       DefaultEmployeesFile,
			HighSalaryThreshold: "80000",
		},
		Events: EventsConfig{
			Topic:        DefaultEventsTopic,
			WriteTimeout: 10 * time.Second,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    AppName,
			Environment:    "development",
			MetricsEnabled: true,
		},
	}
}
