package queries

//go:generate mockgen -source=search.go -destination=../../testutil/mock/queries/search_mock.go -package=queriesmock

import (
	"context"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/rating"
	"staybook/internal/domain/recommend"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidGuests = errs.New("guests must be at least 1")
	ErrInvalidBudget = errs.New("budget cannot be negative")
)

// SearchCandidate is a candidate plus what the listing shows about it.
type SearchCandidate struct {
	recommend.Candidate
	Name  string
	Stars int
	Type  string
}

type SearchReadStore interface {
	// Candidates returns the properties of region (all regions when empty)
	// with their rooms and, for a non-zero stay, the occupancy over it.
	Candidates(ctx context.Context, region string, stay booking.DateRange) ([]SearchCandidate, error)
	// Weights returns nil when the guest has stated no preferences.
	Weights(ctx context.Context, userID uuid.UUID) (*rating.Weights, error)
	FavoriteProfiles(ctx context.Context, userID uuid.UUID) ([]recommend.Favorite, error)
}

type SearchRequest struct {
	Region         string
	Stay           booking.DateRange
	Guests         int
	MaxBudgetCents *int64
}

type SearchItem struct {
	PropertyID  uuid.UUID   `json:"property_id"`
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	Stars       int         `json:"stars"`
	Type        string      `json:"type"`
	ClusterID   *int        `json:"cluster_id,omitempty"`
	RoomIDs     []uuid.UUID `json:"room_ids"`
	TotalCents  int64       `json:"total_cents"`
	Currency    string      `json:"currency"`
	Recommended bool        `json:"recommended"`
}

type RecommendationItem struct {
	SearchItem
	PreferenceScore float64 `json:"preference_score"`
	AffinityScore   int     `json:"affinity_score"`
	Score           float64 `json:"score"`
}

type SearchResult struct {
	Available   []*SearchItem         `json:"available"`
	Recommended []*RecommendationItem `json:"recommended"`
}

type SearchQueries interface {
	Search(ctx context.Context, guestID uuid.UUID, req SearchRequest) (*SearchResult, error)
}

type searchQueriesImpl struct {
	store SearchReadStore
	limit int
}

func NewSearchQueries(store SearchReadStore, cfg config.Config) SearchQueries {
	limit := cfg.Booking.MaxRecommendations
	if limit <= 0 {
		limit = recommend.DefaultLimit
	}
	return &searchQueriesImpl{store: store, limit: limit}
}

// Search filters the region's properties by stay, guests and budget, ranks
// them for the guest, and lists the recommended ones first.
func (q *searchQueriesImpl) Search(ctx context.Context, guestID uuid.UUID, req SearchRequest) (*SearchResult, error) {
	if req.Guests < 1 {
		return nil, errs.Validation(ErrInvalidGuests)
	}
	if req.MaxBudgetCents != nil && *req.MaxBudgetCents < 0 {
		return nil, errs.Validation(ErrInvalidBudget)
	}

	var (
		candidates []SearchCandidate
		weights    *rating.Weights
		favorites  []recommend.Favorite
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = q.store.Candidates(gctx, req.Region, req.Stay)
		return err
	})
	if guestID != uuid.Nil {
		g.Go(func() error {
			var err error
			weights, err = q.store.Weights(gctx, guestID)
			return err
		})
		g.Go(func() error {
			var err error
			favorites, err = q.store.FavoriteProfiles(gctx, guestID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	listing := make(map[uuid.UUID]SearchCandidate, len(candidates))
	snapshot := make([]recommend.Candidate, len(candidates))
	for i, c := range candidates {
		snapshot[i] = c.Candidate
		listing[c.PropertyID] = c
	}

	matches := recommend.Filter(snapshot, recommend.Criteria{
		Region:         req.Region,
		MaxBudgetCents: req.MaxBudgetCents,
		Stay:           req.Stay,
		Guests:         req.Guests,
	})
	ranked := recommend.Rank(matches, weights, favorites, q.limit)

	result := &SearchResult{
		Available:   make([]*SearchItem, 0, len(matches)),
		Recommended: make([]*RecommendationItem, 0, len(ranked)),
	}
	recommended := make(map[uuid.UUID]struct{}, len(ranked))
	for _, s := range ranked {
		recommended[s.Candidate.PropertyID] = struct{}{}
		item := searchItem(listing[s.Candidate.PropertyID], s.Match, true)
		result.Recommended = append(result.Recommended, &RecommendationItem{
			SearchItem:      *item,
			PreferenceScore: s.Preference,
			AffinityScore:   s.Affinity,
			Score:           s.Score,
		})
	}
	for _, m := range recommend.Promote(matches, ranked) {
		_, rec := recommended[m.Candidate.PropertyID]
		result.Available = append(result.Available, searchItem(listing[m.Candidate.PropertyID], m, rec))
	}
	return result, nil
}

func searchItem(c SearchCandidate, m recommend.Match, recommended bool) *SearchItem {
	ids := make([]uuid.UUID, len(m.Rooms))
	for i, r := range m.Rooms {
		ids[i] = r.ID
	}
	return &SearchItem{
		PropertyID:  m.Candidate.PropertyID,
		Name:        c.Name,
		Region:      m.Candidate.Region,
		Stars:       c.Stars,
		Type:        c.Type,
		ClusterID:   m.Candidate.ClusterID,
		RoomIDs:     ids,
		TotalCents:  m.Total.Cents(),
		Currency:    m.Total.Currency(),
		Recommended: recommended,
	}
}
