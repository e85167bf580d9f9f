// Package common holds small helpers shared by the resource handlers.
package common

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

var reNumeric = regexp.MustCompile(`^\d+$`)

// ParseID accepts only purely numeric path segments, so literal routes
// such as /bookings/search are never read as an id.
func ParseID(s string) (int, bool) {
	if !reNumeric.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Error writes the JSON error body used by every endpoint.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": code, "message": message})
}

// FieldsError is Error plus the list of offending request fields.
func FieldsError(c *gin.Context, status int, code, message string, fields []string) {
	c.JSON(status, gin.H{"error": code, "message": message, "fields": fields})
}
