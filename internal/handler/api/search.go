package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	q queries.SearchQueries
}

func NewSearchHandler(q queries.SearchQueries) *SearchHandler {
	return &SearchHandler{q: q}
}

// @Summary Search properties
// @Description Available properties for the stay with the caller's recommendations listed first.
// @Description Anonymous callers get the available list without ranking.
// @Tags search
// @Produce json
// @Param region query string false "Region"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Param guests query int true "Number of guests"
// @Param max_budget_cents query int false "Maximum total price in minor units"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var q reqdto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	req, err := q.ToQuery()
	if err != nil {
		invalid(c, err)
		return
	}
	// uuid.Nil when anonymous
	guestID, _ := middleware.GetUserID(c)
	result, err := h.q.Search(c.Request.Context(), guestID, req)
	if err != nil {
		httperr.Abort(c, err, "Search failed")
		return
	}
	render[resdto.SearchResponse](c, http.StatusOK, result)
}
