package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-sharma10/e-commerce-store/events"
	"github.com/aniket-sharma10/e-commerce-store/payment"
)

// SetupRoutes is the single entry point that wires all "/api/*" route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gateway payment.Gateway, pub *events.Publisher) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupCategoryRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db, gateway, pub)
}
