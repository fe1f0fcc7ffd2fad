package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/Mearkatz/beetle-nonzero/configuration"
)

type rangeParameters struct {
	Limit int `koanf:"limit"`
}

type parameters struct {
	Domain string          `koanf:"domain"`
	Range  rangeParameters `koanf:"range"`
}

func writeFile(t *testing.T, name string, content string) string {
	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func testFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	flagSet := configuration.NewUnsortedFlagSet("test", flag.ContinueOnError)
	flagSet.String("domain", "u64", "numeric domain")
	flagSet.Int("range.limit", 1000, "maximum number of emitted values")
	require.NoError(t, flagSet.Parse(args))

	return flagSet
}

func TestLoadFile(t *testing.T) {
	files := map[string]string{
		"config.json": `{"Domain": "u8", "Range": {"Limit": 5}}`,
		"config.yaml": "Domain: u8\nRange:\n  Limit: 5\n",
		"config.toml": "Domain = \"u8\"\n[Range]\nLimit = 5\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			config := configuration.New()
			require.NoError(t, config.LoadFile(writeFile(t, name, content)))

			var loaded parameters
			require.NoError(t, config.Unmarshal("", &loaded))
			require.Equal(t, parameters{Domain: "u8", Range: rangeParameters{Limit: 5}}, loaded)
			require.Equal(t, "u8", config.String("domain"))
			require.Equal(t, 5, config.Int("range.limit"))
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	config := configuration.New()

	err := config.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.True(t, errors.Is(err, configuration.ErrConfigDoesNotExist))

	err = config.LoadFile(writeFile(t, "config.ini", "domain=u8"))
	require.True(t, errors.Is(err, configuration.ErrUnknownConfigFormat))
}

func TestLoadFlagSet_Defaults(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet(t)))

	require.Equal(t, "u64", config.String("domain"))
	require.Equal(t, 1000, config.Int("range.limit"))
}

func TestLoadFlagSet_Precedence(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadFile(writeFile(t, "config.yaml", "domain: u8\nrange:\n  limit: 5\n")))
	require.NoError(t, config.LoadFlagSet(testFlagSet(t, "--range.limit=7")))

	require.Equal(t, "u8", config.String("domain"), "defaults must not overwrite file values")
	require.Equal(t, 7, config.Int("range.limit"), "explicit flags must overwrite file values")
}

func TestLoadEnvironmentVars(t *testing.T) {
	t.Setenv("NONZERO_DOMAIN", "big")
	t.Setenv("NONZERO_UNKNOWN_KEY", "ignored")

	config := configuration.New()
	require.NoError(t, config.LoadFlagSet(testFlagSet(t)))
	require.NoError(t, config.LoadEnvironmentVars("NONZERO"))

	require.Equal(t, "big", config.String("domain"))
	require.False(t, config.Exists("unknown.key"))
}

func TestJSONLowerParser(t *testing.T) {
	parser := &configuration.JSONLowerParser{}

	decoded, err := parser.Unmarshal([]byte(`{"Range": {"Limit": 5}}`))
	require.NoError(t, err)

	encoded, err := parser.Marshal(decoded)
	require.NoError(t, err)
	require.Equal(t, `{"range":{"limit":5}}`, string(encoded))
}
