package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitalone/baseconv"
	"github.com/capitalone/baseconv/internal/cli/config"
	"github.com/capitalone/baseconv/internal/cli/output"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut string
	}{
		{name: "default version", version: "0.1.0", wantOut: "baseconv v0.1.0"},
		{name: "dev version", version: "dev", wantOut: "baseconv vdev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func TestDemoCommand(t *testing.T) {
	cmd := NewDemoCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{
		"101101 (2) -> 45",
		"45 (10) -> 2D",
		"2D (16) -> 101101",
		"-7FF (16) -> -2047",
	}, strings.Split(strings.TrimSpace(buf.String()), "\n"))
}

func TestDemoCommand_RejectsArgs(t *testing.T) {
	cmd := NewDemoCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestSamplesRoundTrip(t *testing.T) {
	for _, s := range Samples {
		out, err := baseconv.Convert(s.Input, s.From, s.To)
		require.NoError(t, err)
		back, err := baseconv.Convert(out, s.To, s.From)
		require.NoError(t, err)
		assert.Equal(t, s.Input, back)
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		mode    output.Mode
		args    []string
		wantOut string
		wantErr error
	}{
		{
			name:    "defaults",
			args:    []string{"255"},
			wantOut: "FF\n",
		},
		{
			name:    "configured bases",
			cfg:     &config.Config{From: "2", To: "10"},
			args:    []string{"101101"},
			wantOut: "45\n",
		},
		{
			name:    "negative",
			cfg:     &config.Config{From: "16", To: "10"},
			args:    []string{"--", "-7ff"},
			wantOut: "-2047\n",
		},
		{
			name:    "json",
			cfg:     &config.Config{From: "10", To: "16"},
			mode:    output.ModeJSON,
			args:    []string{"45"},
			wantOut: "\"output\": \"2D\"",
		},
		{
			name:    "invalid digit",
			cfg:     &config.Config{From: "10", To: "2"},
			args:    []string{"G1"},
			wantErr: baseconv.ErrInvalidDigit,
		},
		{
			name:    "invalid base",
			cfg:     &config.Config{From: "ten", To: "2"},
			args:    []string{"1"},
			wantErr: baseconv.ErrInvalidBase,
		},
		{
			name:    "base out of range",
			cfg:     &config.Config{From: "10", To: "37"},
			args:    []string{"1"},
			wantErr: baseconv.ErrBaseOutOfRange,
		},
		{
			name:    "empty",
			args:    []string{"--", "-"},
			wantErr: baseconv.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			ctx := context.Background()
			if tt.cfg != nil {
				ctx = config.WithConfig(ctx, tt.cfg)
			}
			if tt.mode != "" {
				ctx = output.WithRenderer(ctx, output.NewRenderer(buf, tt.mode))
			}

			cmd := NewConvertCommand()
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			cmd.SetOut(buf)
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tt.args)

			err := cmd.ExecuteContext(ctx)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func TestConvertCommand_RequiresValue(t *testing.T) {
	cmd := NewConvertCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
