//go:build unit

package mlmodel

import (
	"testing"

	"staybook/internal/domain/recommend"
	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shippedManifest = "../../../model_manifest.yaml"

func TestLoadManifest_Shipped(t *testing.T) {
	m, err := LoadManifest(shippedManifest)
	require.NoError(t, err)

	schema := m.Schema()
	assert.Equal(t, m.Price.Columns, schema.Columns())
	assert.Len(t, m.Cluster.Columns, recommend.ClusterFeatureWidth)

	tol, err := m.Tolerance()
	require.NoError(t, err)
	assert.InDelta(t, m.Price.MAE, tol.Value(), 1e-9)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParseManifest_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "price: [",
		},
		{
			name: "missing endpoints",
			yaml: "price:\n  mae: 1\ncluster:\n  clusters: 2\n",
		},
		{
			name: "column order drift",
			yaml: `price:
  endpoint: /p
  mae: 1
  room_types: [single]
  columns: [stars, capacity, review_count, room_type=single]
cluster:
  endpoint: /c
  clusters: 2
  columns: [a, b, c, d, e, f, g, h]
`,
		},
		{
			name: "negative mae",
			yaml: validManifest(-1, 2, 8),
		},
		{
			name: "cluster width",
			yaml: validManifest(1, 2, 3),
		},
		{
			name: "no clusters",
			yaml: validManifest(1, 0, 8),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, errs.Is(err, ErrInvalidManifest), "got %v", err)
		})
	}
}

func TestParseManifest_Valid(t *testing.T) {
	m, err := ParseManifest([]byte(validManifest(12.5, 4, 8)))
	require.NoError(t, err)
	assert.Equal(t, "/v1/models/price:predict", m.Price.Endpoint)
	assert.Equal(t, 4, m.Cluster.Clusters)
}
