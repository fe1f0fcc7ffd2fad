package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = errors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// parserForFile returns the parser that matches the extension of the given file.
func parserForFile(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownConfigFormat, "%s", filePath)
	}
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrConfigDoesNotExist, "%s", filePath)
		}

		return errors.Wrapf(err, "unable to access config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return errors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including default values and merges them into the
// loaded config. Existing keys will only be overwritten, if they were set via command line. If not given via command
// line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(posflag.Provider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars (NONZERO_RANGE_LIMIT sets "range.limit" for the prefix "NONZERO").
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Unmarshal decodes the parameters below the given path (or all of them for an empty path) into the struct pointed to
// by target. Fields are matched by their "koanf" tags.
func (c *Configuration) Unmarshal(path string, target any) error {
	if err := c.config.Unmarshal(path, target); err != nil {
		return errors.Wrapf(err, "unable to unmarshal config path %q", path)
	}

	return nil
}

// Exists returns true if the given key is set.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(key)
}

// Get returns the raw value of the given key.
func (c *Configuration) Get(key string) any {
	return c.config.Get(key)
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(key)
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(key)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}
