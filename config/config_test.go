package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require.Equal(t, "mainnet", GetString(NetworkKey))
	require.Equal(t, 20, GetInt(GapLimitKey))
	require.Equal(t, 9093, GetInt(MetricsPortKey))
	require.Equal(t, 10, GetInt(WatchRateLimitKey))
	require.Equal(t, 1, GetInt(WatchRateBurstKey))
	require.NotEmpty(t, GetString(DatadirKey))
	require.Contains(t, GetDbDir(), DbLocation)
}

func TestSetOverridesDefaults(t *testing.T) {
	Set(GapLimitKey, 5)
	require.Equal(t, 5, GetInt(GapLimitKey))

	Set(GapLimitKey, 20)
	require.Equal(t, 20, GetInt(GapLimitKey))
}

func TestFailingValidate(t *testing.T) {
	require.NoError(t, validate())

	Set(NetworkKey, "moonnet")
	require.Error(t, validate())
	Set(NetworkKey, "mainnet")

	Set(GapLimitKey, 0)
	require.Error(t, validate())
	Set(GapLimitKey, 20)
}
