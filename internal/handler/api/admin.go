package api

import (
	"net/http"

	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	clusters commands.ClusterCommands
}

func NewAdminHandler(clusters commands.ClusterCommands) *AdminHandler {
	return &AdminHandler{clusters: clusters}
}

// @Summary Refresh property clusters
// @Description Predict and store a cluster id for every property. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClusterRefreshResponse
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/clusters/refresh [post]
func (h *AdminHandler) RefreshClusters(c *gin.Context) {
	res, err := h.clusters.RefreshClusters(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Cluster refresh failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ClusterRefreshResponse{Properties: res.Properties, Assigned: res.Assigned})
}
