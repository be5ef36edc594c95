package mlmodel

import (
	"os"
	"slices"

	"staybook/internal/domain/pricing"
	"staybook/internal/domain/recommend"
	"staybook/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

var ErrInvalidManifest = errs.New("invalid model manifest")

// Manifest describes the trained models behind the serving endpoint: their
// feature layout and, for the price model, its mean absolute error.
type Manifest struct {
	Price   PriceManifest   `yaml:"price"`
	Cluster ClusterManifest `yaml:"cluster"`
}

type PriceManifest struct {
	Version       string   `yaml:"version"`
	Endpoint      string   `yaml:"endpoint"`
	MAE           float64  `yaml:"mae"`
	PropertyTypes []string `yaml:"property_types"`
	Regions       []string `yaml:"regions"`
	RoomTypes     []string `yaml:"room_types"`
	Columns       []string `yaml:"columns"`
}

type ClusterManifest struct {
	Version  string   `yaml:"version"`
	Endpoint string   `yaml:"endpoint"`
	Clusters int      `yaml:"clusters"`
	Columns  []string `yaml:"columns"`
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read model manifest %s", path)
	}
	return ParseManifest(data)
}

// ParseManifest rejects a manifest whose declared columns differ from the
// vectors this service builds.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode model manifest"), ErrInvalidManifest)
	}

	if m.Price.Endpoint == "" || m.Cluster.Endpoint == "" {
		return nil, errs.Wrap(ErrInvalidManifest, "model endpoints are required")
	}
	if err := m.Schema().Verify(m.Price.Columns); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "price model %s", m.Price.Version), ErrInvalidManifest)
	}
	if _, err := m.Tolerance(); err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "price model mae %v", m.Price.MAE), ErrInvalidManifest)
	}
	if len(m.Cluster.Columns) != recommend.ClusterFeatureWidth {
		return nil, errs.Wrapf(ErrInvalidManifest, "cluster model expects %d columns, manifest declares %d",
			recommend.ClusterFeatureWidth, len(m.Cluster.Columns))
	}
	if m.Cluster.Clusters <= 0 {
		return nil, errs.Wrap(ErrInvalidManifest, "cluster count must be positive")
	}
	return &m, nil
}

func (m *Manifest) Schema() pricing.Schema {
	return pricing.Schema{
		PropertyTypes: slices.Clone(m.Price.PropertyTypes),
		Regions:       slices.Clone(m.Price.Regions),
		RoomTypes:     slices.Clone(m.Price.RoomTypes),
	}
}

func (m *Manifest) Tolerance() (pricing.Tolerance, error) {
	return pricing.NewTolerance(m.Price.MAE)
}
