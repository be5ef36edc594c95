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

// UserHandler serves the caller's own profile, preference weights and favorites.
type UserHandler struct {
	preferences commands.PreferenceCommands
	favorites   commands.FavoriteCommands
	q           queries.UserQueries
}

func NewUserHandler(preferences commands.PreferenceCommands, favorites commands.FavoriteCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{preferences: preferences, favorites: favorites, q: q}
}

// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load user")
		return
	}
	render[resdto.UserResponse](c, http.StatusOK, view)
}

// @Summary Profile
// @Description The caller with preferences and favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	view, err := h.q.GetProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load profile")
		return
	}
	render[resdto.ProfileResponse](c, http.StatusOK, view)
}

// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PreferencesResponse
// @Failure 404 {object} httperr.Response
// @Router /users/me/preferences [get]
func (h *UserHandler) GetPreferences(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	h.renderPreferences(c, http.StatusOK, userID)
}

// @Summary Create preferences
// @Description State a weight per rating category; the weights may not sum above the ceiling
// @Tags preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PreferencesRequest true "Preference weights"
// @Success 201 {object} resdto.PreferencesResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/me/preferences [post]
func (h *UserHandler) CreatePreferences(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.PreferencesRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.preferences.CreatePreferences(c.Request.Context(), userID, req.ToDomain()); err != nil {
		httperr.Abort(c, err, "Create preferences failed")
		return
	}
	h.renderPreferences(c, http.StatusCreated, userID)
}

// @Summary Update preferences
// @Description Merge the given weights with the stored ones; the ceiling applies to the merged set
// @Tags preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePreferencesRequest true "Partial preference weights"
// @Success 200 {object} resdto.PreferencesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/me/preferences [patch]
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.preferences.UpdatePreferences(c.Request.Context(), userID, req.ToDomain()); err != nil {
		httperr.Abort(c, err, "Update preferences failed")
		return
	}
	h.renderPreferences(c, http.StatusOK, userID)
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavoriteResponse
// @Router /users/me/favorites [get]
func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	items, err := h.q.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "List favorites failed")
		return
	}
	render[[]*resdto.FavoriteResponse](c, http.StatusOK, items)
}

// @Summary Add favorite
// @Description Adding a property twice is a no-op
// @Tags favorites
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.AddFavoriteRequest true "Property to favorite"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/me/favorites [post]
func (h *UserHandler) AddFavorite(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.AddFavoriteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.favorites.AddFavorite(c.Request.Context(), userID, req.PropertyID); err != nil {
		httperr.Abort(c, err, "Add favorite failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove favorite
// @Tags favorites
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /users/me/favorites/{id} [delete]
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	propertyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	if err := h.favorites.RemoveFavorite(c.Request.Context(), userID, propertyID); err != nil {
		httperr.Abort(c, err, "Remove favorite failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) renderPreferences(c *gin.Context, status int, userID uuid.UUID) {
	view, err := h.q.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load preferences")
		return
	}
	render[resdto.PreferencesResponse](c, status, view)
}
