package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/handlers/common"
)

// Delete removes a booking by id and answers 204 with no body.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := common.ParseID(c.Param("id"))
	if !ok {
		common.Error(c, http.StatusNotFound, "not_found", msgNotFound)
		return
	}

	if err := h.store.Delete(id); err != nil {
		common.Error(c, http.StatusNotFound, "not_found", msgNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
