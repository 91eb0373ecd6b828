package routes

import (
	"net/http"
	"time"

	"servineo/handlers"
	"servineo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Servineo", "deps": utils.GetHealthStatus()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterBookingRoutes sets up the calendar, slot and request flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/month", hb.Booking.ChangeMonth)
		bookingGroup.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		bookingGroup.POST("/session/:sessionID/proceed", hb.Booking.Proceed)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.Back)
		bookingGroup.PUT("/session/:sessionID/slots", hb.Booking.SelectSlots)
		bookingGroup.POST("/session/:sessionID/slots/:index/toggle", hb.Booking.ToggleSlot)
		bookingGroup.POST("/session/:sessionID/request", hb.Booking.SubmitRequest)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterProviderRoutes registers fixer profile, onboarding and job dashboard endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/providers/:id/jobs", hb.Dashboard.GetProviderJobs)

	api := r.Group("/api/fixers")
	{
		api.GET("/by-category", hb.Fixers.GetFixersByCategory)
		api.GET("/check-ci", hb.Fixers.CheckCI)
		api.GET("/user/:userID", hb.Fixers.GetFixerByUser)
		api.GET("/:id", hb.Fixers.GetFixer)
		api.POST("", hb.Fixers.CreateFixer)
		api.PUT("/:id/identity", hb.Fixers.UpdateIdentity)
		api.PUT("/:id/location", hb.Fixers.UpdateLocation)
		api.PUT("/:id/categories", hb.Fixers.UpdateCategories)
		api.PUT("/:id/payments", hb.Fixers.UpdatePayments)
		api.PUT("/:id/terms", hb.Fixers.AcceptTerms)
	}
}

// RegisterTutorialRoutes registers the home page tour endpoints.
func RegisterTutorialRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tutorial/:installationID")
	{
		api.POST("/visit", hb.Tutorial.Visit)
		api.GET("", hb.Tutorial.Get)
		api.POST("/action", hb.Tutorial.Action)
		api.POST("/key", hb.Tutorial.Key)
		api.POST("/show", hb.Tutorial.Show)
		api.PUT("/targets/:key", hb.Tutorial.SetTarget)
		api.POST("/viewport", hb.Tutorial.Viewport)
		api.DELETE("", hb.Tutorial.Leave)
	}
}

// RegisterHelpRoutes registers the help guide endpoints.
func RegisterHelpRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/help")
	{
		api.GET("/categories", hb.Help.ListCategories)
		api.GET("/categories/:key", hb.Help.GetCategory)
		api.GET("/categories/:key/items/:itemID", hb.Help.GetItem)
		api.GET("/search", hb.Help.Search)
	}
}

// RegisterAuthRoutes registers Google sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/google", hb.Auth.GoogleAuthURL)
		api.POST("/google/callback", hb.Auth.GoogleCallback)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterTutorialRoutes(r, hb)
	RegisterHelpRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
}
