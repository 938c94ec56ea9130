package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
	useruc "github.com/gogreen/tree-donation-service/internal/usecase/user"
)

type UserHandler struct {
	users useruc.UserUsecase
}

func NewUserHandler(users useruc.UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.users.Register(c.Request.Context(), &userdto.RegisterInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.users.VerifyOTP(&userdto.VerifyOTPInput{Email: req.Email, OTP: req.OTP})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

type resendOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *UserHandler) ResendOTP(c *gin.Context) {
	var req resendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	message, err := h.users.ResendOTP(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	out, err := h.users.Login(&userdto.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.users.Logout(bearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	out, err := h.users.Profile(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	out, err := h.users.UpdateProfile(user.ID, &userdto.UpdateProfileInput{
		FullName:  req.FullName,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type submitReviewRequest struct {
	FullName   string `json:"full_name"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"review_text"`
}

func (h *UserHandler) SubmitReview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = user.FullName
	}

	out, created, err := h.users.SubmitReview(user.ID, &userdto.SubmitReviewInput{
		Email:      user.Email,
		FullName:   fullName,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, out)
}

func (h *UserHandler) ListReviews(c *gin.Context) {
	email := ""
	if user, ok := currentUser(c); ok {
		email = user.Email
	}

	out, err := h.users.ListReviews(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) SupportContact(c *gin.Context) {
	c.JSON(http.StatusOK, h.users.SupportContact())
}

type supportRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message" binding:"required"`
}

func (h *UserHandler) SendSupportRequest(c *gin.Context) {
	var req supportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.users.SendSupportRequest(&userdto.SupportRequestInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "support request sent"})
}
