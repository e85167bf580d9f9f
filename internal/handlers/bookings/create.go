package bookings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/handlers/common"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/store"
)

// Create adds a booking. All fields except id are required; any id in the
// body is ignored and a fresh one is assigned.
func (h *Handler) Create(c *gin.Context) {
	var in store.Booking
	if err := c.ShouldBindJSON(&in); err != nil {
		common.Error(c, http.StatusBadRequest, "invalid_request", msgInvalid)
		return
	}

	b, err := h.store.Create(in)
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		common.FieldsError(c, http.StatusBadRequest, "invalid_request", msgInvalid, ve.Fields)
		return
	case err != nil:
		common.Error(c, http.StatusInternalServerError, "server_error", msgServerError)
		return
	}

	c.JSON(http.StatusCreated, b)
}
