package shared_utils

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestClientLabels(t *testing.T) {
	labels := GetClientLabels("sova-sentinel", "sentinel", "ghcr.io/sovanetwork/sova-sentinel:latest", "", nil)
	require.Equal(t, "sova-sentinel", labels["ethereum-package.client"])
	require.Equal(t, "sentinel", labels["ethereum-package.client-type"])
	require.Equal(t, "ghcr.io-sovanetwork-sova-sentinel_latest", labels["ethereum-package.client-image"])
	require.NotContains(t, labels, "ethereum-package.connected-client")
}

func TestConnectedClientLabelOnlyWhenSet(t *testing.T) {
	labels := GetClientLabels("geth", "execution", "ethereum/client-go:stable", "lighthouse", nil)
	require.Equal(t, "lighthouse", labels["ethereum-package.connected-client"])
}

func TestExtraLabelsAreMergedIn(t *testing.T) {
	labels := GetClientLabels("geth", "execution", "ethereum/client-go:stable", "", map[string]string{
		"ethereum-package.supernode": "true",
	})
	require.Equal(t, "true", labels["ethereum-package.supernode"])
}
