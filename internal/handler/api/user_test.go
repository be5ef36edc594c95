//go:build unit

package api_test

import (
	"math"
	"net/http"
	"testing"
	"time"

	"staybook/internal/domain/rating"
	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil/httptest"
	commandsmock "staybook/internal/testutil/mock/commands"
	queriesmock "staybook/internal/testutil/mock/queries"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockPreferences *commandsmock.MockPreferenceCommands
	mockFavorites   *commandsmock.MockFavoriteCommands
	mockQueries     *queriesmock.MockUserQueries
	userID          uuid.UUID
	prefs           *queries.PreferencesView
}

func (s *UserHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPreferences = commandsmock.NewMockPreferenceCommands(s.mockCtrl)
	s.mockFavorites = commandsmock.NewMockFavoriteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewUserHandler(s.mockPreferences, s.mockFavorites, s.mockQueries)
	s.userID = uuid.New()
	s.prefs = &queries.PreferencesView{
		Personal: 1, Facilities: 2, Cleanliness: 5, Comfort: 3, ValueForMoney: 4, Location: 5, Wifi: 0,
		Total: 20, UpdatedAt: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}

	me := s.router.Group("/users/me", fakeAuth(s.userID, user.RoleGuest))
	me.GET("", h.Me)
	me.GET("/profile", h.Profile)
	me.GET("/preferences", h.GetPreferences)
	me.POST("/preferences", h.CreatePreferences)
	me.PATCH("/preferences", h.UpdatePreferences)
	me.GET("/favorites", h.ListFavorites)
	me.POST("/favorites", h.AddFavorite)
	me.DELETE("/favorites/:id", h.RemoveFavorite)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

func (s *UserHandlerTestSuite) TestMeAndProfile() {
	s.Run("me: returns the caller", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(&queries.UserView{ID: s.userID, Email: "guest@example.com", Role: "guest", IsActive: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, bearer)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.ID)
		s.Equal("guest", body.Role)
	})

	s.Run("me: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("profile: omits preferences when none are stated", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).
			Return(&queries.ProfileView{
				User:      queries.UserView{ID: s.userID, Email: "guest@example.com", Role: "guest", IsActive: true},
				Favorites: []*queries.FavoriteItem{{PropertyID: uuid.New(), PropertyName: "Casa Verde", Region: "brasov"}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/profile", nil, bearer)

		var body resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Preferences)
		s.Len(body.Favorites, 1)
		s.NotContains(rec.Body.String(), `"preferences"`)
	})
}

func (s *UserHandlerTestSuite) TestPreferences() {
	s.Run("create: stores the weights and returns them", func() {
		want := rating.Weights{1, 2, 5, 3, 4, 5, 0}
		s.mockPreferences.EXPECT().CreatePreferences(gomock.Any(), s.userID, want).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetPreferences(gomock.Any(), s.userID).Return(s.prefs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/preferences", map[string]any{
			"personal": 1, "facilities": 2, "cleanliness": 5, "comfort": 3,
			"value_for_money": 4, "location": 5, "wifi": 0,
		}, bearer)

		var body resdto.PreferencesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(20, body.Total)
		s.Equal(s.prefs.UpdatedAt.Unix(), body.UpdatedAt)
	})

	s.Run("create: 400 when a weight is negative", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/preferences",
			map[string]any{"personal": -1}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("create: 400 when a weight cannot be stored", func() {
		huge := math.MaxInt64/2 + 1
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/preferences",
			map[string]any{"personal": huge, "facilities": huge}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("update: 400 when a weight cannot be stored", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/me/preferences",
			map[string]any{"wifi": 40000}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("create: 400 when the sum exceeds the ceiling", func() {
		s.mockPreferences.EXPECT().CreatePreferences(gomock.Any(), s.userID, gomock.Any()).
			Return(errs.Validation(errs.New("weights sum above ceiling"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/preferences",
			map[string]any{"personal": 30}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create preferences failed")
	})

	s.Run("create: 409 when preferences already exist", func() {
		s.mockPreferences.EXPECT().CreatePreferences(gomock.Any(), s.userID, gomock.Any()).
			Return(errs.Conflict(commands.ErrPreferencesExist)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/preferences",
			map[string]any{"wifi": 1}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Create preferences failed")
	})

	s.Run("update: only the sent weights are patched", func() {
		s.mockPreferences.EXPECT().UpdatePreferences(gomock.Any(), s.userID, gomock.Any()).
			Return(rating.Weights{1, 2, 5, 3, 4, 5, 4}, nil).Times(1)
		s.mockQueries.EXPECT().GetPreferences(gomock.Any(), s.userID).Return(s.prefs, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/users/me/preferences",
			map[string]any{"wifi": 4}, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("get: 404 before any preferences exist", func() {
		s.mockQueries.EXPECT().GetPreferences(gomock.Any(), s.userID).
			Return(nil, errs.NotFound(queries.ErrPreferencesNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/preferences", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to load preferences")
	})
}

func (s *UserHandlerTestSuite) TestFavorites() {
	propertyID := uuid.New()

	s.Run("add: 204 No Content", func() {
		s.mockFavorites.EXPECT().AddFavorite(gomock.Any(), s.userID, propertyID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/favorites",
			map[string]any{"property_id": propertyID}, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("add: 400 without a property", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/users/me/favorites", map[string]any{}, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("list: returns favorites", func() {
		s.mockQueries.EXPECT().ListFavorites(gomock.Any(), s.userID).
			Return([]*queries.FavoriteItem{{PropertyID: propertyID, PropertyName: "Casa Verde", Region: "brasov"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/favorites", nil, bearer)

		var body []resdto.FavoriteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(propertyID, body[0].PropertyID)
	})

	s.Run("remove: 204 No Content", func() {
		s.mockFavorites.EXPECT().RemoveFavorite(gomock.Any(), s.userID, propertyID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/users/me/favorites/"+propertyID.String(), nil, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// Search and admin handlers
// ================================================================================

type SearchHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockSearchQueries
	mockCluster *commandsmock.MockClusterCommands
	userID      uuid.UUID
}

func (s *SearchHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockSearchQueries(s.mockCtrl)
	s.mockCluster = commandsmock.NewMockClusterCommands(s.mockCtrl)
	s.userID = uuid.New()

	// Search is reachable anonymously; the token only personalizes it.
	optional := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			fakeAuth(s.userID, user.RoleGuest)(c)
		}
	}
	s.router.GET("/search", optional, api.NewSearchHandler(s.mockQueries).Search)
	s.router.POST("/admin/clusters/refresh", api.NewAdminHandler(s.mockCluster).RefreshClusters)
}

func (s *SearchHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchHandlerSuite(t *testing.T) {
	suite.Run(t, new(SearchHandlerTestSuite))
}

func (s *SearchHandlerTestSuite) TestSearch() {
	item := queries.SearchItem{
		PropertyID: uuid.New(), Name: "Casa Verde", Region: "brasov", Stars: 4, Type: "guesthouse",
		RoomIDs: []uuid.UUID{uuid.New()}, TotalCents: 36000, Currency: "eur", Recommended: true,
	}
	result := &queries.SearchResult{
		Available:   []*queries.SearchItem{&item},
		Recommended: []*queries.RecommendationItem{{SearchItem: item, PreferenceScore: 8.5, AffinityScore: 2, Score: 10.5}},
	}

	s.Run("success: personalized for a signed-in guest", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req queries.SearchRequest) (*queries.SearchResult, error) {
				s.Equal("brasov", req.Region)
				s.Equal(2, req.Guests)
				s.Equal(4, req.Stay.Nights())
				s.Require().NotNil(req.MaxBudgetCents)
				s.Equal(int64(50000), *req.MaxBudgetCents)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/search?region=brasov&check_in=2026-08-10&check_out=2026-08-14&guests=2&max_budget_cents=50000", nil, bearer)

		var body resdto.SearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Recommended, 1)
		s.Equal(item.PropertyID, body.Recommended[0].PropertyID)
		s.Equal(10.5, body.Recommended[0].Score)
		s.Require().Len(body.Available, 1)
		s.True(body.Available[0].Recommended)
	})

	s.Run("success: anonymous search without dates", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), uuid.Nil, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req queries.SearchRequest) (*queries.SearchResult, error) {
				s.True(req.Stay.IsZero())
				return &queries.SearchResult{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search?guests=1", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	testCases := []struct {
		name  string
		query string
	}{
		{name: "missing guests", query: "region=brasov"},
		{name: "zero guests", query: "guests=0"},
		{name: "only one date", query: "guests=1&check_in=2026-08-10"},
		{name: "reversed dates", query: "guests=1&check_in=2026-08-14&check_out=2026-08-10"},
		{name: "negative budget", query: "guests=1&max_budget_cents=-1"},
	}
	for _, tc := range testCases {
		s.Run("error: 400 Bad Request on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/search?"+tc.query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}
}

func (s *SearchHandlerTestSuite) TestRefreshClusters() {
	s.Run("success: reports the assigned count", func() {
		s.mockCluster.EXPECT().RefreshClusters(gomock.Any()).
			Return(&commands.ClusterRefreshResult{Properties: 12, Assigned: 12}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/clusters/refresh", nil, "")

		var body resdto.ClusterRefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(12, body.Assigned)
	})

	s.Run("error: 503 when the cluster model is down", func() {
		s.mockCluster.EXPECT().RefreshClusters(gomock.Any()).
			Return(nil, errs.Unavailable(errs.New("model timeout"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/clusters/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Cluster refresh failed")
	})
}
