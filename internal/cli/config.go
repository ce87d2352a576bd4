package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/todos/internal/paths"
	"github.com/mesh-intelligence/todos/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// config.yaml keys.
	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyNamespace = "namespace"
	cfgKeyLogFile   = "log_file"

	envPrefix = "TODOS"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# todos configuration

# Storage backend: sqlite, diskv, file or memory
backend: sqlite

# Storage key holding the list
namespace: todos

# Data directory (overridable by --data-dir)
# data_dir:

# JSON log file (overridable by --log-file)
# log_file:
`

// settings is the resolved configuration for one invocation.
type settings struct {
	ConfigDir string
	LogFile   string
	Store     types.Config
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run. backend, namespace and log_file can be
// overridden from TODOS_* variables. data_dir is not bound here because
// its environment variable ranks below the config file.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyNamespace, types.DefaultNamespace)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyNamespace, cfgKeyLogFile} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureDefaultConfigFile(configDir string) error {
	path := paths.ConfigFile(configDir)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// resolve applies flag > config.yaml > environment > default for every
// setting.
func (o *rootOptions) resolve() (settings, error) {
	configDir, err := paths.ResolveConfigDir(o.configDir)
	if err != nil {
		return settings{}, systemError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, systemError(err)
	}

	dataDir, err := paths.ResolveDataDir(o.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, systemError(fmt.Errorf("resolve data dir: %w", err))
	}

	s := settings{
		ConfigDir: configDir,
		LogFile:   firstNonEmpty(o.logFile, v.GetString(cfgKeyLogFile)),
		Store: types.Config{
			Backend:   firstNonEmpty(o.backend, v.GetString(cfgKeyBackend)),
			DataDir:   dataDir,
			Namespace: firstNonEmpty(o.namespace, v.GetString(cfgKeyNamespace)),
		},
	}
	if err := s.Store.Validate(); err != nil {
		return settings{}, userError(fmt.Errorf("invalid config: %w", err))
	}
	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
