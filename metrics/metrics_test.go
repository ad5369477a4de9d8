package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plus3/stakblok/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerServesIndex(t *testing.T) {
	h, err := metrics.Handler()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/debug/statsviz/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestStartDisabled(t *testing.T) {
	called := false
	metrics.Start(0, func(error) { called = true })
	assert.False(t, called)
}
