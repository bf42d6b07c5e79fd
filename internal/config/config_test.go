package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, DefaultSheetCSVURL, cfg.Sheet.CSVURL)
	assert.Equal(t, 30*time.Second, cfg.Sheet.HTTPTimeout)
	assert.Empty(t, cfg.Sheet.DateLayouts)
	assert.False(t, cfg.Sheet.ReloadEnabled)
	assert.Equal(t, 6, cfg.Dashboard.TopCreativesLimit)
	assert.Equal(t, 30, cfg.Dashboard.DefaultRangeDays)
	assert.Equal(t, 8, cfg.Dashboard.TrendsLimit)
	assert.Equal(t, []string{"*"}, cfg.Cors.AllowedOrigins)
}

func TestNewConfig_FromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("SHEET_CSV_URL", "http://localhost:9999/sheet.csv")
	t.Setenv("SHEET_HTTP_TIMEOUT", "5s")
	t.Setenv("SHEET_DATE_LAYOUTS", "2006-01-02,02/01/2006")
	t.Setenv("SHEET_RELOAD_ENABLED", "true")
	t.Setenv("DASHBOARD_TOP_CREATIVES_LIMIT", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.com,http://b.com")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/sheet.csv", cfg.Sheet.CSVURL)
	assert.Equal(t, 5*time.Second, cfg.Sheet.HTTPTimeout)
	assert.Equal(t, []string{"2006-01-02", "02/01/2006"}, cfg.Sheet.DateLayouts)
	assert.True(t, cfg.Sheet.ReloadEnabled)
	assert.Equal(t, 10, cfg.Dashboard.TopCreativesLimit)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.Cors.AllowedOrigins)
}

func TestConfig_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		expected string
	}{
		{name: "Vazio usa o local", timezone: "", expected: time.Local.String()},
		{name: "Fuso válido", timezone: "UTC", expected: "UTC"},
		{name: "Fuso inválido usa o local", timezone: "Nowhere/Invalid", expected: time.Local.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{App: App{Timezone: tt.timezone}}
			assert.Equal(t, tt.expected, cfg.Location().String())
		})
	}
}
