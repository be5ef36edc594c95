//go:build unit

package mlmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"staybook/internal/domain/amenity"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validManifest builds a small manifest with one vocabulary entry per group.
func validManifest(mae float64, clusters, clusterColumns int) string {
	cols := []string{"capacity", "stars", "review_count", "property_type=hotel", "region=cluj", "room_type=double"}
	for _, a := range amenity.All() {
		cols = append(cols, "amenity="+a.String())
	}
	ccols := make([]string, clusterColumns)
	for i := range ccols {
		ccols[i] = fmt.Sprintf("c%d", i)
	}
	return fmt.Sprintf(`price:
  version: test
  endpoint: /v1/models/price:predict
  mae: %v
  property_types: [hotel]
  regions: [cluj]
  room_types: [double]
  columns: [%s]
cluster:
  version: test
  endpoint: /v1/models/cluster:predict
  clusters: %d
  columns: [%s]
`, mae, strings.Join(cols, ", "), clusters, strings.Join(ccols, ", "))
}

func newTestModels(t *testing.T, retries int, handler http.HandlerFunc) (*PriceModel, *ClusterModel) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig()
	cfg.Model.BaseURL = srv.URL
	cfg.Model.RetryCount = retries
	cfg.Pricing.ModelTimeout = 2 * time.Second

	m, err := ParseManifest([]byte(validManifest(10, 3, 8)))
	require.NoError(t, err)

	client := NewRestyClient(cfg)
	price, err := NewPriceModel(client, m, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return price, NewClusterModel(client, m)
}

func TestPriceModel_Predict(t *testing.T) {
	var got predictRequest
	price, _ := newTestModels(t, 0, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models/price:predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":[123.5]}`))
	})

	features := make([]float64, price.Schema().Width())
	features[0] = 2
	p, err := price.Predict(context.Background(), features)
	require.NoError(t, err)

	assert.InDelta(t, 123.5, p, 1e-9)
	require.Len(t, got.Instances, 1)
	assert.Equal(t, features, got.Instances[0])
	assert.InDelta(t, 10, price.Tolerance().Value(), 1e-9)
}

func TestPriceModel_Predict_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		width   int
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"bad shape"}`},
		{name: "empty predictions", status: http.StatusOK, body: `{"predictions":[]}`, wantErr: ErrEmptyPrediction},
		{name: "wrong width", status: http.StatusOK, body: `{"predictions":[1]}`, width: 3, wantErr: ErrFeatureWidth},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, _ := newTestModels(t, 0, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			width := tc.width
			if width == 0 {
				width = price.Schema().Width()
			}

			_, err := price.Predict(context.Background(), make([]float64, width))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr))
			}
		})
	}
}

func TestPriceModel_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	price, _ := newTestModels(t, 2, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"predictions":[80]}`))
	})

	p, err := price.Predict(context.Background(), make([]float64, price.Schema().Width()))
	require.NoError(t, err)
	assert.InDelta(t, 80, p, 1e-9)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClusterModel_Predict(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{name: "in range", body: `{"predictions":[2]}`, want: 2},
		{name: "out of range", body: `{"predictions":[3]}`, wantErr: ErrUnknownCluster},
		{name: "negative", body: `{"predictions":[-1]}`, wantErr: ErrUnknownCluster},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, cluster := newTestModels(t, 0, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/models/cluster:predict", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tc.body))
			})

			id, err := cluster.Predict(context.Background(), make([]float64, 8))
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
