package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/handlers/common"
)

// Get returns a single booking by numeric id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.Error(c, http.StatusNotFound, "not_found", msgNotFound)
		return
	}

	b, err := h.store.Get(id)
	if err != nil {
		common.Error(c, http.StatusNotFound, "not_found", msgNotFound)
		return
	}
	c.JSON(http.StatusOK, b)
}
