package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, Load())
	assert.Equal(t, ":8080", APIAddr())
	assert.Equal(t, energy.MonthlyFixed30, MonthlyMode())
	assert.Equal(t, domain.DefaultCategories, Categories())
	assert.Equal(t, "1/2/2006", DateLayout())
	assert.False(t, UseCloudServices())
	assert.True(t, CompensateOrphans())
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ENERGY_MONTHLY_MODE", "weekly")
	t.Setenv("ENERGY_CATEGORIES", "Lighting, Fans ,,Other")
	t.Setenv("API_ADDR", ":9090")

	require.NoError(t, Load())
	assert.Equal(t, ":9090", APIAddr())
	assert.Equal(t, energy.MonthlyWeekly, MonthlyMode())
	assert.Equal(t, []string{"Lighting", "Fans", "Other"}, Categories())
}

func TestLoadRejectsUnknownMonthlyMode(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ENERGY_MONTHLY_MODE", "quarterly")

	assert.Error(t, Load())
}
