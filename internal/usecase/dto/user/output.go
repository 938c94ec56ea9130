package userdto

type UserOutput struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar,omitempty"`
	IsVerified bool   `json:"is_verified"`
}

type LoginOutput struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    UserOutput `json:"user"`
}

type ReviewOutput struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"review_text"`
	IsPublic   bool   `json:"is_public"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type ReviewSummaryOutput struct {
	AverageRating   float64          `json:"average_rating"`
	TotalReviews    int64            `json:"total_reviews"`
	RatingBreakdown map[string]int64 `json:"rating_breakdown"`
}

type ListReviewsOutput struct {
	Summary           ReviewSummaryOutput `json:"summary"`
	Reviews           []*ReviewOutput     `json:"reviews"`
	CurrentUserReview *ReviewOutput       `json:"current_user_review"`
}

type SupportContactOutput struct {
	SupportEmail    string `json:"support_email"`
	WhatsAppNumber  string `json:"whatsapp_number"`
	WhatsAppDisplay string `json:"whatsapp_display"`
}
