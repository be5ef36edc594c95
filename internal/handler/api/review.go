package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a property after a completed stay, one score per rating category
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), userID)
	if err != nil {
		httperr.Abort(c, err, "Create review failed")
		return
	}
	h.renderReview(c, http.StatusCreated, result.ReviewID)
}

// @Summary Get review
// @Description Get a review by ID
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.renderReview(c, http.StatusOK, id)
}

// @Summary Update review
// @Description Replace the scores and comment of an own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		httperr.Abort(c, err, "Update review failed")
		return
	}
	h.renderReview(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Delete own review (admins can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, role); err != nil {
		httperr.Abort(c, err, "Delete review failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List property reviews
// @Description List reviews of a property, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Property ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ReviewListItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /properties/{id}/reviews [get]
func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	propertyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByProperty(c.Request.Context(), propertyID, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List reviews failed")
		return
	}
	renderPage[*resdto.ReviewListItemResponse](c, items, next)
}

// @Summary List user reviews
// @Description List reviews posted by a user (guests can only access their own)
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.ReviewListItemResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, actorID, role, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List reviews failed")
		return
	}
	renderPage[*resdto.ReviewListItemResponse](c, items, next)
}

func (h *ReviewHandler) renderReview(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load review")
		return
	}
	render[resdto.ReviewResponse](c, status, view)
}
