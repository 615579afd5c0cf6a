package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("pools", "", "")
	flags.String("addr", "", "")
	flags.Bool("watch", false, "")
	flags.BoolP("verbose", "v", false, "")
	flags.StringP("output", "o", "", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", newFlags())
	require.NoError(t, err)

	assert.Empty(t, cfg.PoolsPath, "default is the embedded stock document")
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Watch)
	assert.False(t, cfg.Verbose)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syndna.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pools: custom.yml\naddr: \":9000\"\n"), 0644))

	cfg, err := Load(path, newFlags())
	require.NoError(t, err)

	assert.Equal(t, "custom.yml", cfg.PoolsPath)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, path, FileUsed())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syndna.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pools: from-file.yml\n"), 0644))
	t.Setenv("SYNDNA_POOLS", "from-env.yml")

	cfg, err := Load(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, "from-env.yml", cfg.PoolsPath)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SYNDNA_POOLS", "from-env.yml")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--pools", "from-flag.yml"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.yml", cfg.PoolsPath)
}

func TestLoad_UnchangedFlagDoesNotOverride(t *testing.T) {
	t.Setenv("SYNDNA_ADDR", ":7000")

	cfg, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr, "unset flags must not clobber env values")
}

func TestLoad_InvalidOutputFormat(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output", "xml"}))

	_, err := Load("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"table", false},
		{"json", false},
		{"yaml", false},
		{"", true},
		{"csv", true},
	}
	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			cfg := &Config{OutputFormat: tt.format}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
