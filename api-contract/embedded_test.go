package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/tuanvumaihuynh/inventory-hub/api-contract"
)

func TestLoad(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/products",
		"/api/products/low-stock",
		"/api/products/stats",
		"/api/products/{id}",
		"/api/dashboard/summary",
		"/api/dashboard/activity",
		"/api/dashboard/alerts",
		"/healthz",
		"/ws",
		"/metrics",
		"/docs",
		"/docs/openapi.yml",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}
