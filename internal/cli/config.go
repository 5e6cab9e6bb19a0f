package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/abbr/internal/logging"
	"github.com/mesh-intelligence/abbr/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDataDir     = "data_dir"
	cfgKeyStorageFile = "storage_file"
	cfgKeyLogLevel    = "log.level"
	cfgKeyLogFormat   = "log.format"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	DataDir     string        `yaml:"data_dir,omitempty"`
	StorageFile string        `yaml:"storage_file"`
	Log         configFileLog `yaml:"log"`
}

type configFileLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyStorageFile, types.DefaultStorageFile)
	v.SetDefault(cfgKeyLogLevel, logging.DefaultLevel)
	v.SetDefault(cfgKeyLogFormat, logging.DefaultFormat)
	return v
}

// loadConfig reads config.yaml from configDir into v. A missing file or
// directory is not an error.
func loadConfig(v *viper.Viper, configDir string) error {
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		DataDir:     dataDir,
		StorageFile: types.DefaultStorageFile,
		Log: configFileLog{
			Level:  logging.DefaultLevel,
			Format: logging.DefaultFormat,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
