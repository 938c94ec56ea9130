package userdto

type RegisterInput struct {
	FullName  string
	Email     string
	Phone     string
	Password  string
	AvatarURL string
}

type VerifyOTPInput struct {
	Email string
	OTP   string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Email     string
	FullName  *string
	Phone     *string
	AvatarURL *string
}

type SubmitReviewInput struct {
	Email      string
	FullName   string
	Rating     int
	ReviewText string
}

type SupportRequestInput struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}
