package sales_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tradewindmarket/vendas/pkg/salesdk"
)

// TestHealthEndpoints verifies the liveness and readiness probes on a
// fresh container.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupSalesContainer(t)
	defer cleanup()

	sdk := salesdk.NewSDKClient(baseURL)

	require.NoError(t, sdk.Livez(t.Context()))
	require.NoError(t, sdk.Readyz(t.Context()))
}
