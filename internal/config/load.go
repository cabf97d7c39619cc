package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for every configuration environment variable.
const EnvPrefix = "USERS"

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// legacyEnv maps configuration keys to the unprefixed variable names the
// service has always honored.
var legacyEnv = map[string]string{
	"database.hostname": "MONGO_DB_HOSTNAME",
	"database.port":     "MONGO_DB_PORT",
	"database.name":     "MONGO_DB",
}

// Load configuration from environment variables and an optional .env file.
// Real environment variables take precedence over values from the .env file,
// which take precedence over defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(DotEnvFile)
}

// LoadFrom behaves like Load but reads the dotenv file at path.
// A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if err := applyDotEnv(v, path); err != nil {
		return nil, err
	}

	// USERS_SERVER_PORT, USERS_DATABASE_DRIVER, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, EnvPrefix+"_"+envKey(key), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "public")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.hostname", "localhost")
	v.SetDefault("database.port", 27017)
	v.SetDefault("database.name", "yourDatabaseName")
	v.SetDefault("database.collection", "users")
	v.SetDefault("database.url", "")
}

// applyDotEnv reads a KEY=VALUE file and installs its values as defaults, so
// that the process environment still wins.
func applyDotEnv(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("env")
	if err := file.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, key := range v.AllKeys() {
		names := []string{EnvPrefix + "_" + envKey(key)}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy)
		}
		for _, name := range names {
			// viper lower-cases keys read from env files
			if file.IsSet(strings.ToLower(name)) {
				v.SetDefault(key, file.Get(strings.ToLower(name)))
			}
		}
	}
	return nil
}

func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
