package main

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApp_ServesPublicRoutesThroughMiddleware(t *testing.T) {
	app := buildApp()

	// The template catalog is public and touches no storage, so the
	// request exercises the full recover/logger/cors chain.
	req := httptest.NewRequest("GET", "/api/templates", nil)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestBuildApp_UnknownRouteIs404(t *testing.T) {
	app := buildApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)
}
