package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	donationuc "github.com/gogreen/tree-donation-service/internal/usecase/donation"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
)

type AdminHandler struct {
	donations donationuc.DonationUsecase
}

func NewAdminHandler(donations donationuc.DonationUsecase) *AdminHandler {
	return &AdminHandler{donations: donations}
}

type proofRequest struct {
	PlantedLocation   string   `json:"planted_location"`
	PlantedLatitude   *float64 `json:"planted_latitude"`
	PlantedLongitude  *float64 `json:"planted_longitude"`
	PlantationDate    string   `json:"plantation_date"`
	TreesPlantedCount *int64   `json:"trees_planted_count"`
	PlantationUpdate  string   `json:"plantation_update"`
	ProofImage1URL    string   `json:"proof_image_1_url"`
	ProofImage2URL    string   `json:"proof_image_2_url"`
	ThankYouNote      string   `json:"thank_you_note"`
}

func (r *proofRequest) toInput(c *gin.Context) (*donationdto.ProofInput, bool) {
	input := &donationdto.ProofInput{
		PlantedLocation:   r.PlantedLocation,
		PlantedLatitude:   r.PlantedLatitude,
		PlantedLongitude:  r.PlantedLongitude,
		TreesPlantedCount: r.TreesPlantedCount,
		PlantationUpdate:  r.PlantationUpdate,
		ProofImage1URL:    r.ProofImage1URL,
		ProofImage2URL:    r.ProofImage2URL,
		ThankYouNote:      r.ThankYouNote,
	}
	if r.PlantationDate != "" {
		date, err := time.Parse("2006-01-02", r.PlantationDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "plantation_date must be YYYY-MM-DD"})
			return nil, false
		}
		input.PlantationDate = &date
	}
	return input, true
}

type approveOrdersRequest struct {
	IDs   []uint        `json:"ids" binding:"required"`
	Proof *proofRequest `json:"proof"`
}

func (h *AdminHandler) ApproveOrders(c *gin.Context) {
	var req approveOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := &donationdto.ApproveOrdersInput{IDs: req.IDs}
	if req.Proof != nil {
		proof, ok := req.Proof.toInput(c)
		if !ok {
			return
		}
		input.Proof = proof
	}

	out, err := h.donations.ApproveOrders(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type orderIDsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

func (h *AdminHandler) RejectOrders(c *gin.Context) {
	var req orderIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rejected, err := h.donations.RejectOrders(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": rejected})
}

func (h *AdminHandler) RestoreOrders(c *gin.Context) {
	var req orderIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	restored, err := h.donations.RestoreOrders(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restored": restored})
}
