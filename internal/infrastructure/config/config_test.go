package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/resin-calc/internal/domain/valueobject"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "resin-calc", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxRequestSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())

	margin, err := cfg.Calculator.Margin()
	require.NoError(t, err)
	assert.Equal(t, valueobject.MarginRate(0.05), margin)

	ratio, err := cfg.Calculator.MixRatio()
	require.NoError(t, err)
	assert.Equal(t, valueobject.OneToOne, ratio)

	require.Len(t, cfg.Catalog.Products, 3)
	assert.Equal(t, "promise-deep-pour", cfg.Catalog.Products[0].SKU)
	assert.True(t, cfg.Catalog.Products[0].BestSeller)
	assert.Equal(t, "15.00", cfg.Catalog.Products[2].Price)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RESIN_SERVER_PORT", "9090")
	t.Setenv("RESIN_ENVIRONMENT", "production")
	t.Setenv("RESIN_CALCULATOR_MARGIN_RATE", "0.1")
	t.Setenv("RESIN_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 0.1, cfg.Calculator.MarginRate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		err  error
	}{
		{"port out of range", "RESIN_SERVER_PORT", "70000", ErrInvalidPort},
		{"unknown log level", "RESIN_LOG_LEVEL", "loud", ErrInvalidLogLevel},
		{"margin above one", "RESIN_CALCULATOR_MARGIN_RATE", "2", valueobject.ErrInvalidMarginRate},
		{"bad mix ratio", "RESIN_CALCULATOR_DEFAULT_MIX_RATIO", "1-1", valueobject.ErrInvalidMixRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resin.yaml")
	yaml := `
server:
  port: 3000
calculator:
  margin_rate: 0.1
  default_mix_ratio: "2:1"
catalog:
  products:
    - sku: custom-resin
      name: Custom Resin
      category: standard
      url: https://example.com/resin
      price: "42.50"
      currency: EUR
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 0.1, cfg.Calculator.MarginRate)
	assert.Equal(t, "2:1", cfg.Calculator.DefaultMixRatio)
	require.Len(t, cfg.Catalog.Products, 1)
	assert.Equal(t, "custom-resin", cfg.Catalog.Products[0].SKU)
	assert.Equal(t, "EUR", cfg.Catalog.Products[0].Currency)
	assert.Equal(t, "resin-calc", cfg.App.Name, "defaults still apply")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("RESIN_SERVER_PORT", "0")
	assert.Panics(t, func() { MustLoad() })
}
