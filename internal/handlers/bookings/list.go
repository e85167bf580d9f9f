package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List returns every booking as a JSON array, in insertion order.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}
