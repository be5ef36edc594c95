//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"staybook/internal/domain/review"
	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/errs"
	"staybook/internal/testutil"
	"staybook/internal/testutil/builder"
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

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	auth := fakeAuth(s.userID, user.RoleGuest)
	s.router.POST("/reviews", auth, s.handler.Create)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", auth, s.handler.Update)
	s.router.DELETE("/reviews/:id", auth, s.handler.Delete)
	s.router.GET("/properties/:id/reviews", s.handler.ListByProperty)
	s.router.GET("/users/:id/reviews", auth, s.handler.ListByUser)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func scoreField(name string, v any) func(m map[string]any) {
	return testutil.Nested("scores", testutil.Field(name, v))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	b := builder.NewReviewBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()
	expectedResult := &commands.CreateReviewResult{ReviewID: returnView.ID}

	bound := []testCaseReview{
		{name: "score boundary OK (1)", mutate: scoreField("wifi", 1), expectCode: http.StatusCreated},
		{name: "score boundary OK (10)", mutate: scoreField("cleanliness", 10), expectCode: http.StatusCreated},
		{name: "score boundary invalid (0)", mutate: scoreField("comfort", 0), expectCode: http.StatusBadRequest},
		{name: "score boundary invalid (11)", mutate: scoreField("location", 11), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		{name: "empty comment allowed", mutate: testutil.Field("comment", ""), expectCode: http.StatusCreated},
	}

	missing := []testCaseReview{
		{name: "missing field: property_id", mutate: testutil.Field("property_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: reservation_id", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: scores.value_for_money", mutate: scoreField("value_for_money", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: scores", mutate: testutil.Field("scores", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the stored review", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand(), s.userID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)

		var body resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(int16(b.Scores[2]), body.Scores.Cleanliness)
		s.Equal(returnView.CreatedAt.Unix(), body.CreatedAt)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseReview{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bearer)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "no completed stay", commandsError: errs.Forbidden(review.ErrReservationNotEligible), expectedStatus: http.StatusForbidden},
			{name: "already reviewed", commandsError: errs.Conflict(review.ErrReviewAlreadyExists), expectedStatus: http.StatusConflict},
			{name: "invalid scores", commandsError: errs.Validation(review.ErrInvalidScore), expectedStatus: http.StatusBadRequest},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Create review failed")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	returnView := builder.NewReviewBuilder().BuildView()
	url := "/reviews/" + returnView.ID.String()

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Comment, response.Comment)
		s.Equal(returnView.Scores.Wifi, response.Scores.Wifi)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "review not found", queriesError: errs.NotFound(queries.ErrReviewNotFound), expectedStatus: http.StatusNotFound},
			{name: "internal server error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Failed to load review")
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	b := builder.NewReviewBuilder()
	returnView := b.BuildView()
	url := "/reviews/" + returnView.ID.String()
	reqBody := b.BuildUpdateRequestDTO()

	testCases := []testCaseReview{
		{name: "score boundary OK (1)", mutate: scoreField("personal", 1), expectCode: http.StatusOK},
		{name: "score boundary invalid (0)", mutate: scoreField("personal", 0), expectCode: http.StatusBadRequest},
		{name: "score boundary invalid (11)", mutate: scoreField("facilities", 11), expectCode: http.StatusBadRequest},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 200 OK with the updated review", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), returnView.ID, reqBody.ToCommand(), s.userID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, bearer)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().UpdateReview(gomock.Any(), returnView.ID, gomock.Any(), s.userID).
						Return(nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, bearer)
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/invalid-uuid", reqBody, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "review not owned", commandsError: errs.Forbidden(commands.ErrReviewNotOwned), expectedStatus: http.StatusForbidden},
			{name: "review not found", commandsError: errs.NotFound(commands.ErrReviewNotFoundWrite), expectedStatus: http.StatusNotFound},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateReview(gomock.Any(), returnView.ID, gomock.Any(), s.userID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, bearer)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "Update review failed")
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, user.RoleGuest).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, bearer)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden for someone else's review", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.userID, user.RoleGuest).
			Return(errs.Forbidden(commands.ErrReviewNotOwned)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Delete review failed")
	})
}

// ================================================================================
// TestListByProperty / TestListByUser
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByProperty() {
	propertyID := uuid.New()
	url := "/properties/" + propertyID.String() + "/reviews"
	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().BuildListItem(),
		builder.NewReviewBuilder().BuildListItem(),
	}

	s.Run("success: returns a page with the next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListByProperty(gomock.Any(), propertyID, &queries.Cursor{After: "abc"}, 2).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2&after=abc", nil, "")

		var page resdto.Page[resdto.ReviewListItemResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 2)
		s.Equal("next-page", page.NextCursor)
		s.Equal(items[0].ID, page.Items[0].ID)
	})

	s.Run("success: empty list renders as an empty array", func() {
		s.mockQueries.EXPECT().ListByProperty(gomock.Any(), propertyID, nil, queries.DefaultListLimit).
			Return([]*queries.ReviewListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	s.Run("error: 400 Bad Request for a malformed cursor", func() {
		s.mockQueries.EXPECT().ListByProperty(gomock.Any(), propertyID, gomock.Any(), gomock.Any()).
			Return(nil, nil, errs.Validation(queries.ErrInvalidCursor)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "List reviews failed")
	})
}

func (s *ReviewHandlerTestSuite) TestListByUser() {
	url := "/users/" + s.userID.String() + "/reviews"

	s.Run("success: passes the acting user and role", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, s.userID, user.RoleGuest, nil, queries.DefaultListLimit).
			Return([]*queries.ReviewListItem{builder.NewReviewBuilder().BuildListItem()}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, bearer)

		var page resdto.Page[resdto.ReviewListItemResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 1)
		s.Empty(page.NextCursor)
	})

	s.Run("error: 403 Forbidden for another guest's reviews", func() {
		other := uuid.New()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), other, s.userID, user.RoleGuest, nil, queries.DefaultListLimit).
			Return(nil, nil, errs.Forbidden(queries.ErrReviewAccess)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+other.String()+"/reviews", nil, bearer)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "List reviews failed")
	})
}
