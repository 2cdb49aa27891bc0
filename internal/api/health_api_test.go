package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fridgechef/backend/internal/testhelpers"
)

func TestHealthEndpoint(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")

	// No session required.
	w := ts.Do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealthEndpointUnavailable(t *testing.T) {
	ts := testhelpers.NewTestServer(t, "")

	sqlDB, err := ts.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := ts.Do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
