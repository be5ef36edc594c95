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

type PropertyHandler struct {
	cmds commands.CatalogCommands
	q    queries.PropertyQueries
}

func NewPropertyHandler(cmds commands.CatalogCommands, q queries.PropertyQueries) *PropertyHandler {
	return &PropertyHandler{cmds: cmds, q: q}
}

// @Summary Create property
// @Description Create a property owned by the caller (owner or admin role)
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePropertyRequest true "Create property request"
// @Success 201 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	details, err := req.ToDomain()
	if err != nil {
		invalid(c, err)
		return
	}
	id, err := h.cmds.CreateProperty(c.Request.Context(), details, actorID, role)
	if err != nil {
		httperr.Abort(c, err, "Create property failed")
		return
	}
	h.renderProperty(c, http.StatusCreated, id)
}

// @Summary Get property
// @Description Get a property with its rooms and rating averages
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.renderProperty(c, http.StatusOK, id)
}

// @Summary List properties
// @Description List properties, newest first, optionally by region or owner
// @Tags properties
// @Produce json
// @Param region query string false "Region"
// @Param owner_id query string false "Owner ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.Page[resdto.PropertyListItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	filter := queries.PropertyFilter{Region: c.Query("region")}
	if v := c.Query("owner_id"); v != "" {
		ownerID, err := uuid.Parse(v)
		if err != nil {
			invalid(c, err)
			return
		}
		filter.OwnerID = &ownerID
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "List properties failed")
		return
	}
	renderPage[*resdto.PropertyListItemResponse](c, items, next)
}

// @Summary Update property
// @Description Partially update an owned property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.UpdatePropertyRequest true "Update property request"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		invalid(c, err)
		return
	}
	if err := h.cmds.UpdateProperty(c.Request.Context(), id, patch, actorID); err != nil {
		httperr.Abort(c, err, "Update property failed")
		return
	}
	h.renderProperty(c, http.StatusOK, id)
}

// @Summary Delete property
// @Description Delete an owned property without upcoming confirmed stays
// @Tags properties
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteProperty(c.Request.Context(), id, actorID); err != nil {
		httperr.Abort(c, err, "Delete property failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Add room
// @Description Add a room to an owned property; the price rating is assigned synchronously
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomSavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /properties/{id}/rooms [post]
func (h *PropertyHandler) CreateRoom(c *gin.Context) {
	propertyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	spec, err := req.ToDomain()
	if err != nil {
		invalid(c, err)
		return
	}
	res, err := h.cmds.CreateRoom(c.Request.Context(), propertyID, spec, actorID)
	if err != nil {
		httperr.Abort(c, err, "Create room failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomResult(res))
}

// @Summary Update room
// @Description Partially update a room; any change reclassifies its price rating
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Update room request"
// @Success 200 {object} resdto.RoomSavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *PropertyHandler) UpdateRoom(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToDomain()
	if err != nil {
		invalid(c, err)
		return
	}
	res, err := h.cmds.UpdateRoom(c.Request.Context(), roomID, patch, actorID)
	if err != nil {
		httperr.Abort(c, err, "Update room failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomResult(res))
}

// @Summary Delete room
// @Description Delete a room without upcoming confirmed stays
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *PropertyHandler) DeleteRoom(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, _, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteRoom(c.Request.Context(), roomID, actorID); err != nil {
		httperr.Abort(c, err, "Delete room failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) renderProperty(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load property")
		return
	}
	render[resdto.PropertyResponse](c, status, view)
}
