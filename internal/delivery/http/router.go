package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	donationuc "github.com/gogreen/tree-donation-service/internal/usecase/donation"
	useruc "github.com/gogreen/tree-donation-service/internal/usecase/user"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the public API, the authenticated user surface and the
// operator endpoints onto one engine.
func NewRouter(
	cfg *config.DonationConfig,
	users useruc.UserUsecase,
	donations donationuc.DonationUsecase,
	geocoder domain.Geocoder,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	userHandler := NewUserHandler(users)
	donationHandler := NewDonationHandler(donations, cfg)
	adminHandler := NewAdminHandler(donations)
	geocodeHandler := NewGeocodeHandler(geocoder)

	requireAuth := RequireAuth(users)
	optionalAuth := OptionalAuth(users)

	usersGroup := router.Group("/api/users")
	{
		usersGroup.POST("/register/", userHandler.Register)
		usersGroup.POST("/verify-otp/", userHandler.VerifyOTP)
		usersGroup.POST("/resend-otp/", userHandler.ResendOTP)
		usersGroup.POST("/login/", userHandler.Login)
		usersGroup.POST("/logout/", userHandler.Logout)

		usersGroup.GET("/profile/", requireAuth, userHandler.Profile)
		usersGroup.POST("/profile/", requireAuth, userHandler.UpdateProfile)

		usersGroup.GET("/reviews/", optionalAuth, userHandler.ListReviews)
		usersGroup.POST("/reviews/", requireAuth, userHandler.SubmitReview)

		usersGroup.GET("/support/", userHandler.SupportContact)
		usersGroup.POST("/support/", userHandler.SendSupportRequest)
	}

	treesGroup := router.Group("/api/trees")
	{
		treesGroup.GET("/config/", donationHandler.PaymentConfig)
		treesGroup.GET("/geocode/", geocodeHandler.Search)
		treesGroup.GET("/impact/", donationHandler.Impact)
		treesGroup.GET("/track/:token/", donationHandler.TrackOrder)

		treesGroup.POST("/create-order/", requireAuth, donationHandler.CreateOrder)
		treesGroup.POST("/verify-payment/", donationHandler.VerifyPayment)

		treesGroup.GET("/orders/", requireAuth, donationHandler.ListOrders)
		treesGroup.GET("/orders/:id/", requireAuth, donationHandler.GetOrder)
		treesGroup.PATCH("/orders/:id/", requireAuth, donationHandler.UpdateOrder)
		treesGroup.DELETE("/orders/:id/", requireAuth, donationHandler.DeleteOrder)
	}

	adminGroup := router.Group("/api/admin", RequireAdminKey(cfg.Admin.APIKey))
	{
		adminGroup.POST("/orders/approve/", adminHandler.ApproveOrders)
		adminGroup.POST("/orders/reject/", adminHandler.RejectOrders)
		adminGroup.POST("/orders/restore/", adminHandler.RestoreOrders)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
