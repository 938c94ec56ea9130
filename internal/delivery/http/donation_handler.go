package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gogreen/tree-donation-service/internal/config"
	donationuc "github.com/gogreen/tree-donation-service/internal/usecase/donation"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

type DonationHandler struct {
	donations donationuc.DonationUsecase
	cfg       *config.DonationConfig
}

func NewDonationHandler(donations donationuc.DonationUsecase, cfg *config.DonationConfig) *DonationHandler {
	return &DonationHandler{donations: donations, cfg: cfg}
}

// PaymentConfig exposes what the checkout widget needs; the key secret
// never leaves the server.
func (h *DonationHandler) PaymentConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"gateway_key_id": h.cfg.Razorpay.KeyID,
		"tree_price_inr": h.cfg.Pricing.TreePriceINR,
		"currency":       h.cfg.Pricing.Currency,
	})
}

type createOrderRequest struct {
	FullName         string   `json:"full_name" binding:"required"`
	Email            string   `json:"email" binding:"required"`
	Phone            string   `json:"phone" binding:"required"`
	NumberOfTrees    int64    `json:"number_of_trees" binding:"required"`
	TreeSpecies      string   `json:"tree_species"`
	PlantingLocation string   `json:"planting_location" binding:"required"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Objective        string   `json:"objective" binding:"required"`
	DedicationName   string   `json:"dedication_name"`
	Notes            string   `json:"notes"`
}

func (h *DonationHandler) CreateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	out, err := h.donations.CreateOrder(c.Request.Context(), &donationdto.CreateOrderInput{
		UserID:           user.ID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		NumberOfTrees:    req.NumberOfTrees,
		TreeSpecies:      req.TreeSpecies,
		PlantingLocation: req.PlantingLocation,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Objective:        req.Objective,
		DedicationName:   req.DedicationName,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

type verifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id" binding:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	GatewaySignature string `json:"razorpay_signature" binding:"required"`
}

func (h *DonationHandler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	out, err := h.donations.VerifyPayment(c.Request.Context(), &donationdto.VerifyPaymentInput{
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		GatewaySignature: req.GatewaySignature,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return uint(id), true
}

func (h *DonationHandler) ListOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	out, err := h.donations.ListUserOrders(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) GetOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	out, err := h.donations.GetUserOrder(user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateOrderRequest struct {
	FullName         *string  `json:"full_name"`
	Phone            *string  `json:"phone"`
	NumberOfTrees    *int64   `json:"number_of_trees"`
	TreeSpecies      *string  `json:"tree_species"`
	PlantingLocation *string  `json:"planting_location"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Objective        *string  `json:"objective"`
	DedicationName   *string  `json:"dedication_name"`
	Notes            *string  `json:"notes"`
}

func (h *DonationHandler) UpdateOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	out, err := h.donations.UpdateUserOrder(user.ID, id, &donationdto.UpdateOrderInput{
		FullName:         req.FullName,
		Phone:            req.Phone,
		NumberOfTrees:    req.NumberOfTrees,
		TreeSpecies:      req.TreeSpecies,
		PlantingLocation: req.PlantingLocation,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Objective:        req.Objective,
		DedicationName:   req.DedicationName,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) DeleteOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.donations.DeleteUserOrder(user.ID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order removed from your dashboard"})
}

func (h *DonationHandler) TrackOrder(c *gin.Context) {
	out, err := h.donations.TrackOrder(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DonationHandler) Impact(c *gin.Context) {
	out, err := h.donations.Impact()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
