package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zap.InfoLevel, false},
		{"debug", zap.DebugLevel, false},
		{"WARN", zap.WarnLevel, false},
		{"warning", zap.WarnLevel, false},
		{" error ", zap.ErrorLevel, false},
		{"loud", zap.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("dev", "shouty")
	assert.Error(t, err)
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With("plan_id", "p1")

	l.Warn("fallback used", "session", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fallback used", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "p1", fields["plan_id"])
	assert.EqualValues(t, 2, fields["session"])
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypals.log")
	l, err := New("prod", "info", path)
	require.NoError(t, err)

	l.Debug("dropped")
	l.Info("plan-created", "plan_id", "p1")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"plan_id":"p1"`)
	assert.NotContains(t, string(data), "dropped")
}
