package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jeomhps/hotel-bookings/api-go/internal/handlers/bookings"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/middleware"
	"github.com/Jeomhps/hotel-bookings/api-go/internal/store"
)

const greeting = "Hotel booking server.  Ask for /bookings, etc."

// Options tunes the router; the zero value is usable.
type Options struct {
	Logger          *zap.Logger
	RateLimitPerMin int
}

// NewRouter builds the gin engine serving the booking API over s.
func NewRouter(s *store.Store, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(opts.RateLimitPerMin))

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, greeting) })
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "bookings": s.Len()})
	})

	bh := bookings.NewHandler(s)
	g := r.Group("/bookings")
	{
		g.GET("", bh.List)
		g.POST("", bh.Create)
		// Static segment; gin matches it before the :id wildcard.
		g.GET("/search", bh.Search)
		g.GET("/:id", bh.Get)
		g.DELETE("/:id", bh.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Route not found"})
	})
	return r
}
