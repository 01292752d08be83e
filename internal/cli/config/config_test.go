package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/baseconv"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("from", "f", "", "")
	fs.StringP("to", "t", "", "")
	fs.StringP("output", "o", "", "")
	fs.BoolP("verbose", "v", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baseconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// chdir moves into an empty directory so no stray baseconv.yaml is picked up.
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFrom, cfg.From)
	assert.Equal(t, DefaultTo, cfg.To)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoad_Precedence(t *testing.T) {
	chdir(t)
	path := writeConfig(t, "from: 2\nto: 36\noutput: json\nverbose: true\n")

	tests := []struct {
		name   string
		env    map[string]string
		args   []string
		from   string
		to     string
		output string
	}{
		{
			name:   "file only",
			from:   "2",
			to:     "36",
			output: "json",
		},
		{
			name:   "env overrides file",
			env:    map[string]string{"BASECONV_FROM": "8"},
			from:   "8",
			to:     "36",
			output: "json",
		},
		{
			name:   "flag overrides env",
			env:    map[string]string{"BASECONV_FROM": "8", "BASECONV_OUTPUT": "yaml"},
			args:   []string{"--from", "16", "-t", "10"},
			from:   "16",
			to:     "10",
			output: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(path, newFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.from, cfg.From)
			assert.Equal(t, tt.to, cfg.To)
			assert.Equal(t, tt.output, cfg.Output)
			assert.True(t, cfg.Verbose)
			assert.Equal(t, path, cfg.File)
		})
	}
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	chdir(t)
	require.NoError(t, os.WriteFile("baseconv.yml", []byte("to: 8\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "8", cfg.To)
	assert.Equal(t, DefaultFrom, cfg.From)
	assert.Equal(t, "baseconv.yml", cfg.File)
}

func TestLoad_UnsetFlagsIgnored(t *testing.T) {
	chdir(t)
	path := writeConfig(t, "from: 2\n")

	cfg, err := Load(path, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.From)
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Bases(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		from    int
		to      int
		wantErr error
	}{
		{name: "valid", cfg: Config{From: "2", To: "36"}, from: 2, to: 36},
		{name: "integral float", cfg: Config{From: "16.0", To: "10"}, from: 16, to: 10},
		{name: "non integer source", cfg: Config{From: "two", To: "10"}, wantErr: baseconv.ErrInvalidBase},
		{name: "target out of range", cfg: Config{From: "10", To: "37"}, wantErr: baseconv.ErrBaseOutOfRange},
		{name: "source out of range", cfg: Config{From: "1", To: "10"}, wantErr: baseconv.ErrBaseOutOfRange},
		{name: "non integer before out of range", cfg: Config{From: "1", To: "x"}, wantErr: baseconv.ErrInvalidBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := tt.cfg.Bases()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := &Config{From: "2", To: "8"}
	ctx := WithConfig(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}
