package mlmodel

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/pricing"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
)

var (
	ErrFeatureWidth    = errs.New("feature vector width does not match the model")
	ErrEmptyPrediction = errs.New("model returned no prediction")
	ErrUnknownCluster  = errs.New("model returned a cluster id outside the trained range")
)

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse[T any] struct {
	Predictions []T    `json:"predictions"`
	Error       string `json:"error,omitempty"`
}

// NewRestyClient builds the HTTP client shared by both model endpoints.
// Transport errors and 5xx answers are retried.
func NewRestyClient(cfg config.Config) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.Model.BaseURL).
		SetTimeout(cfg.Pricing.ModelTimeout).
		SetRetryCount(cfg.Model.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

func predict[T any](ctx context.Context, client *resty.Client, endpoint string, features []float64) (T, error) {
	var (
		zero T
		out  predictResponse[T]
	)
	resp, err := client.R().
		SetContext(ctx).
		SetBody(predictRequest{Instances: [][]float64{features}}).
		SetResult(&out).
		SetError(&out).
		Post(endpoint)
	if err != nil {
		return zero, errs.Wrapf(err, "call model %s", endpoint)
	}
	if resp.IsError() {
		return zero, errs.Newf("model %s returned %d: %s", endpoint, resp.StatusCode(), out.Error)
	}
	if len(out.Predictions) == 0 {
		return zero, errs.Wrapf(ErrEmptyPrediction, "model %s", endpoint)
	}
	return out.Predictions[0], nil
}

// PriceModel predicts a nightly price in major currency units.
type PriceModel struct {
	client    *resty.Client
	endpoint  string
	schema    pricing.Schema
	tolerance pricing.Tolerance
	logger    *slog.Logger
}

func NewPriceModel(client *resty.Client, m *Manifest, logger *slog.Logger) (*PriceModel, error) {
	tol, err := m.Tolerance()
	if err != nil {
		return nil, err
	}
	logger.Info("price model loaded",
		slog.String("version", m.Price.Version),
		slog.Float64("mae", m.Price.MAE),
		slog.Int("columns", len(m.Price.Columns)))
	return &PriceModel{
		client:    client,
		endpoint:  m.Price.Endpoint,
		schema:    m.Schema(),
		tolerance: tol,
		logger:    logger,
	}, nil
}

func (p *PriceModel) Predict(ctx context.Context, features []float64) (float64, error) {
	if len(features) != p.schema.Width() {
		return 0, errs.Wrapf(ErrFeatureWidth, "got %d, want %d", len(features), p.schema.Width())
	}
	return predict[float64](ctx, p.client, p.endpoint, features)
}

func (p *PriceModel) Schema() pricing.Schema       { return p.schema }
func (p *PriceModel) Tolerance() pricing.Tolerance { return p.tolerance }

// ClusterModel assigns a property to one of the trained satisfaction clusters.
type ClusterModel struct {
	client   *resty.Client
	endpoint string
	clusters int
	width    int
}

func NewClusterModel(client *resty.Client, m *Manifest) *ClusterModel {
	return &ClusterModel{
		client:   client,
		endpoint: m.Cluster.Endpoint,
		clusters: m.Cluster.Clusters,
		width:    len(m.Cluster.Columns),
	}
}

func (c *ClusterModel) Predict(ctx context.Context, features []float64) (int, error) {
	if len(features) != c.width {
		return 0, errs.Wrapf(ErrFeatureWidth, "got %d, want %d", len(features), c.width)
	}
	id, err := predict[int](ctx, c.client, c.endpoint, features)
	if err != nil {
		return 0, err
	}
	if id < 0 || id >= c.clusters {
		return 0, errs.Wrapf(ErrUnknownCluster, "cluster %d of %d", id, c.clusters)
	}
	return id, nil
}
