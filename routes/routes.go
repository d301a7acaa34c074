package routes

import (
	"net/http"
	"time"

	"sufra/handlers"
	"sufra/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWizardRoutes registers the wizard form-session endpoints.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", hb.Wizard.StartSessionHandler)
		api.GET("/session/:sessionID", hb.Wizard.GetSessionHandler)
		api.PUT("/session/:sessionID/field", hb.Wizard.SetFieldHandler)
		api.PUT("/session/:sessionID/language", hb.Wizard.SetLanguageHandler)
		api.POST("/session/:sessionID/bulk-fill", hb.Wizard.BulkFillHandler)

		// Weekly schedule edits.
		api.PUT("/session/:sessionID/schedule/:day/working", hb.Wizard.SetWorkingDayHandler)
		api.PUT("/session/:sessionID/schedule/:day/open24", hb.Wizard.SetOpen24HoursHandler)
		api.POST("/session/:sessionID/schedule/:day/slots", hb.Wizard.AddTimeSlotHandler)
		api.DELETE("/session/:sessionID/schedule/:day/slots/:index", hb.Wizard.RemoveTimeSlotHandler)
		api.PUT("/session/:sessionID/schedule/:day/slots/:index", hb.Wizard.SetSlotTimeHandler)

		// Step navigation.
		api.POST("/session/:sessionID/advance", hb.Wizard.AdvanceHandler)
		api.POST("/session/:sessionID/retreat", hb.Wizard.RetreatHandler)
		api.POST("/session/:sessionID/jump", hb.Wizard.JumpHandler)
		api.POST("/session/:sessionID/submit", hb.Wizard.SubmitHandler)
	}
}

// RegisterBranchRoutes registers branch management and recycle-bin endpoints.
func RegisterBranchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/branches")
	{
		api.GET("", hb.Branch.ListBranchesHandler)
		api.GET("/id/:id", hb.Branch.GetBranchHandler)
		api.DELETE("/delete/:id", hb.Branch.DeleteBranchHandler)
		api.PUT("/restore/:id", hb.Branch.RestoreBranchHandler)
		api.GET("/recycle-bin", hb.Branch.RecycleBinHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.POST("/upload/:type/:bucket", hb.Storage.UploadFileHandler)
		api.GET("/url/:type/:bucket/:filename", hb.Storage.GetDownloadURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Language", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWizardRoutes(r, hb)
	RegisterBranchRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
