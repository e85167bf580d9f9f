package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/handlers/common"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/store"
)

// Search filters bookings by ?term= (guest name or email) and/or ?date=
// (a day inside the stay). At least one is required.
func (h *Handler) Search(c *gin.Context) {
	res, err := h.store.Search(store.SearchQuery{
		Term: c.Query("term"),
		Date: c.Query("date"),
	})
	if errors.Is(err, store.ErrMissingParameter) {
		common.Error(c, http.StatusBadRequest, "missing_parameter", "missing term or date")
		return
	}
	if err != nil {
		common.Error(c, http.StatusInternalServerError, "server_error", msgServerError)
		return
	}
	c.JSON(http.StatusOK, res)
}
