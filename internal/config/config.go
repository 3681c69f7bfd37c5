// Package config loads application settings from appsettings.json.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "appsettings.json"

// Config holds everything the application needs at startup. Both the
// connection string and the users file path are mandatory; their absence is
// a fatal startup error, not a runtime one.
type Config struct {
	ConnectionString string
	UsersFilePath    string
	LogsFilePath     string
}

// Load reads the JSON settings file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read settings file %q: %w", path, err)
	}

	cfg := &Config{
		ConnectionString: v.GetString("ConnectionStrings.DefaultConnection"),
		UsersFilePath:    v.GetString("UserSettings.UsersFilePath"),
		LogsFilePath:     v.GetString("UserSettings.LogsFilePath"),
	}
	if cfg.ConnectionString == "" {
		return nil, errors.New("connection string 'ConnectionStrings.DefaultConnection' not found in settings")
	}
	if cfg.UsersFilePath == "" {
		return nil, errors.New("user settings 'UserSettings.UsersFilePath' not found in settings")
	}
	if cfg.LogsFilePath == "" {
		cfg.LogsFilePath = "logs.txt"
	}
	return cfg, nil
}
