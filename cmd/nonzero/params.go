package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/Mearkatz/beetle-nonzero/configuration"
	"github.com/Mearkatz/beetle-nonzero/logger"
	"github.com/Mearkatz/beetle-nonzero/nonzero"
)

const (
	// EnvPrefix is the prefix of the environment variables that override loaded parameters.
	EnvPrefix = "NONZERO"

	// CfgConfigFilePath is the path of an optional JSON, YAML or TOML configuration file.
	CfgConfigFilePath = "config"
	// CfgDomain is the integer domain all arguments are parsed into.
	CfgDomain = "domain"
	// CfgRangeLimit is the maximum number of values printed by the range command (0 means unlimited).
	CfgRangeLimit = "range.limit"
)

// ParametersRange contains the settings of the range command.
type ParametersRange struct {
	// Limit is the maximum number of printed values. It only applies if Limited is set.
	Limit   nonzero.NonZero[uint]
	Limited bool
}

// Parameters contains the settings of the command.
type Parameters struct {
	Domain string
	Range  ParametersRange
}

func newFlagSet() *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("nonzero", flag.ContinueOnError)
	flagSet.StringP(CfgConfigFilePath, "c", "", "file path of the configuration file")
	flagSet.StringP(CfgDomain, "d", "u64", "the integer domain ("+strings.Join(domainNames(), "|")+")")
	flagSet.Int(CfgRangeLimit, 1000, "the maximum number of values printed by the range command (0 = unlimited)")
	flagSet.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flagSet.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (json|console)")

	return flagSet
}

// loadConfiguration loads the configuration file (if given), the flags and the environment variables, in this order.
func loadConfiguration(flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if filePath, err := flagSet.GetString(CfgConfigFilePath); err == nil && filePath != "" {
		if err := config.LoadFile(filePath); err != nil {
			return nil, err
		}
	}

	// load the flags to set the default values
	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, err
	}

	// the env vars are loaded last, otherwise the keys they refer to would not exist yet
	if err := config.LoadEnvironmentVars(EnvPrefix); err != nil {
		return nil, err
	}

	return config, nil
}

func loadParameters(config *configuration.Configuration) (*Parameters, error) {
	params := &Parameters{
		Domain: strings.ToLower(config.String(CfgDomain)),
	}

	// the limit arrives as string (env vars), float64 (JSON), int64 (TOML) or int (YAML, flags)
	limit, err := nonzero.FromAny[uint](config.Get(CfgRangeLimit))
	switch {
	case err == nil:
		params.Range.Limit, params.Range.Limited = limit, true
	case errors.Is(err, nonzero.ErrZero):
		// zero disables the limit
	default:
		return nil, errors.Wrapf(err, "invalid %s", CfgRangeLimit)
	}

	return params, nil
}
