// README: HTTP route registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/catalog", s.catalog.Get)
	api.POST("/search", s.quotes.Search)

	// Everything below may call the Maps API.
	api.GET("/quotes", s.rateLimit, s.quotes.List)
	api.GET("/places/autocomplete", s.rateLimit, s.places.Autocomplete)
	api.GET("/places/:id", s.rateLimit, s.places.Resolve)

	api.GET("/booking", s.booking.Summary)
	api.POST("/booking/price", s.booking.Price)
	api.POST("/booking/proceed", s.booking.Proceed)
	api.POST("/coupons/apply", s.booking.ApplyCoupon)
}
