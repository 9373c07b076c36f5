package config

import (
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/grovetools/flux/errors"
	"github.com/grovetools/flux/schema"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists the recognized configuration file names, in precedence order.
var configNames = []string{
	"flux.yml",
	"flux.yaml",
	".flux.yml",
	".flux.yaml",
}

// Load reads and parses a flux configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses configuration data, expands ${VAR} references from the
// environment, and validates the result against the embedded schema.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	// Validate the raw document so schema errors reference the yaml keys the
	// user actually wrote.
	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}
	if raw != nil {
		validator, err := schema.NewValidator()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load embedded schema")
		}
		if err := validator.Validate(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
		}
	}

	return &config, nil
}

// LoadDefault finds and loads the configuration by searching upward from the
// current working directory, falling back to the XDG config directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	path, err := FindConfigFile(cwd)
	if err != nil {
		return nil, err
	}

	return Load(path)
}

// FindConfigFile searches for flux configuration files with the following precedence:
// 1. Start directory up to filesystem root
// 2. XDG config directory (~/.config/flux/flux.yml)
func FindConfigFile(startDir string) (string, error) {
	// 1. Search from the start directory up to the filesystem root
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// 2. Check XDG config directory
	if xdgPath := getXDGConfigPath(); xdgPath != "" {
		if info, err := os.Stat(xdgPath); err == nil && !info.IsDir() {
			return xdgPath, nil
		}
	}

	return "", errors.ConfigNotFound(filepath.Join(startDir, configNames[0]))
}

// getXDGConfigPath returns the path to the global config file, or "" if the
// config home cannot be determined.
func getXDGConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "flux", "flux.yml")
}

// expandEnvVars replaces ${VAR} references with environment values.
// Unset variables expand to the empty string.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		name := envVarRegex.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
