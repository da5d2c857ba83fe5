package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "DEATHCHEST"

	DefaultConfigDir = ".deathchest"
	dataDirName      = "death_data"
	sqliteFileName   = "death_data.db"

	keyChestWorld    = "chest.world"
	keyChestX        = "chest.x"
	keyChestY        = "chest.y"
	keyChestZ        = "chest.z"
	keyClaimCapacity = "claim.capacity"
	keyClaimTitle    = "claim.title"
	keyStorageDriver = "storage.driver"
	keyStoragePath   = "storage.path"
	keyLogLevel      = "log.level"
	keyLogFormat     = "log.format"

	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Settings struct {
	ConfigFile string

	ClaimPointSet bool
	Chest         domain.ClaimPoint

	ClaimCapacity int
	ClaimTitle    string

	StorageDriver string
	StoragePath   string

	LogLevel  string
	LogFormat string
}

var _ ports.ClaimPointSource = Settings{}

func (s Settings) ClaimPoint() (domain.ClaimPoint, bool) {
	return s.Chest, s.ClaimPointSet
}

// Load reads config.toml from configDir, or configFile when it is set, and
// layers DEATHCHEST_* environment variables on top. A missing file is not an
// error.
func Load(cfg *viper.Viper, configDir string, configFile string) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if strings.TrimSpace(configDir) == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Settings{}, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, DefaultConfigDir)
	}

	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(configDir)
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(keyClaimCapacity, domain.DefaultCapacity)
	cfg.SetDefault(keyClaimTitle, domain.DefaultContainerTitle)
	cfg.SetDefault(keyStorageDriver, DriverFile)
	cfg.SetDefault(keyLogLevel, "info")
	cfg.SetDefault(keyLogFormat, "text")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !(configFile != "" && errors.Is(err, os.ErrNotExist)) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		ConfigFile:    cfg.ConfigFileUsed(),
		ClaimCapacity: cfg.GetInt(keyClaimCapacity),
		ClaimTitle:    cfg.GetString(keyClaimTitle),
		StorageDriver: strings.ToLower(strings.TrimSpace(cfg.GetString(keyStorageDriver))),
		StoragePath:   cfg.GetString(keyStoragePath),
		LogLevel:      cfg.GetString(keyLogLevel),
		LogFormat:     cfg.GetString(keyLogFormat),
	}
	if settings.ConfigFile == "" {
		settings.ConfigFile = filepath.Join(configDir, configName+"."+configType)
	}

	if world := strings.TrimSpace(cfg.GetString(keyChestWorld)); world != "" {
		settings.ClaimPointSet = true
		settings.Chest = domain.ClaimPoint{Location: domain.BlockLocation{
			World: world,
			X:     cfg.GetInt(keyChestX),
			Y:     cfg.GetInt(keyChestY),
			Z:     cfg.GetInt(keyChestZ),
		}}
	}

	if settings.ClaimCapacity <= 0 {
		return Settings{}, fmt.Errorf("claim capacity must be positive, got %d", settings.ClaimCapacity)
	}

	switch settings.StorageDriver {
	case DriverFile:
		if settings.StoragePath == "" {
			settings.StoragePath = filepath.Join(configDir, dataDirName)
		}
	case DriverSQLite:
		if settings.StoragePath == "" {
			settings.StoragePath = filepath.Join(configDir, sqliteFileName)
		}
	default:
		return Settings{}, fmt.Errorf("unsupported storage driver %q", settings.StorageDriver)
	}

	return settings, nil
}
