package donationdto

type CreateOrderOutput struct {
	Message       string `json:"message"`
	OrderID       string `json:"order_id"`
	AmountPaise   int64  `json:"amount_paise"`
	Currency      string `json:"currency"`
	GatewayKeyID  string `json:"gateway_key_id"`
	DonationID    uint   `json:"donation_id"`
	TreePriceINR  int64  `json:"tree_price_inr"`
}

type VerifyPaymentOutput struct {
	Message    string `json:"message"`
	DonationID uint   `json:"donation_id"`
}

type ImpactBlock struct {
	CarbonOffsetKgPerYear float64 `json:"carbon_offset_kg_per_year"`
	TreesCounted          int64   `json:"trees_counted"`
	Unit                  string  `json:"unit"`
}

type OrderDetails struct {
	FullName             string   `json:"full_name"`
	Email                string   `json:"email,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	NumberOfTrees        int64    `json:"number_of_trees"`
	TreeSpecies          string   `json:"tree_species"`
	PlantingLocation     string   `json:"planting_location"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	RequestedMapURL      string   `json:"requested_map_url,omitempty"`
	RequestedMapLiveURL  string   `json:"requested_map_live_url,omitempty"`
	RequestedMapImageURL string   `json:"requested_map_image_url,omitempty"`
	Objective            string   `json:"objective"`
	DedicationName       string   `json:"dedication_name"`
	Notes                string   `json:"notes"`
	CreatedAt            string   `json:"created_at,omitempty"`
	AmountPaise          int64    `json:"amount_paise"`
	Currency             string   `json:"currency"`
}

type ApprovalDetails struct {
	ApprovalStatus     string   `json:"approval_status"`
	ApprovedAt         string   `json:"approved_at,omitempty"`
	PlantedLocation    string   `json:"planted_location"`
	PlantedLatitude    *float64 `json:"planted_latitude"`
	PlantedLongitude   *float64 `json:"planted_longitude"`
	PlantedMapURL      string   `json:"planted_map_url,omitempty"`
	PlantedMapLiveURL  string   `json:"planted_map_live_url,omitempty"`
	PlantedMapImageURL string   `json:"planted_map_image_url,omitempty"`
	PlantationDate     string   `json:"plantation_date,omitempty"`
	TreesPlantedCount  *int64   `json:"trees_planted_count"`
	PlantationUpdate   string   `json:"plantation_update"`
	ThankYouNote       string   `json:"thank_you_note"`
	ProofImage1URL     string   `json:"proof_image_1_url,omitempty"`
	ProofImage2URL     string   `json:"proof_image_2_url,omitempty"`
}

// OrderOutput is the full projection. The tracking variant strips email
// and phone at the top level and inside the order details.
type OrderOutput struct {
	ID               uint     `json:"id"`
	FullName         string   `json:"full_name"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	NumberOfTrees    int64    `json:"number_of_trees"`
	TreeSpecies      string   `json:"tree_species"`
	PlantingLocation string   `json:"planting_location"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Objective        string   `json:"objective"`
	DedicationName   string   `json:"dedication_name"`
	Notes            string   `json:"notes"`
	AmountPaise      int64    `json:"amount_paise"`
	Currency         string   `json:"currency"`
	PaymentStatus    string   `json:"payment_status"`
	ApprovalStatus   string   `json:"approval_status"`
	GatewayOrderID   string   `json:"gateway_order_id"`
	GatewayPaymentID string   `json:"gateway_payment_id"`
	CreatedAt        string   `json:"created_at,omitempty"`
	PaidAt           string   `json:"paid_at,omitempty"`
	ApprovedAt       string   `json:"approved_at,omitempty"`
	TrackingToken    string   `json:"tracking_token"`
	TrackingURL      string   `json:"tracking_url"`
	CertificateURL   string   `json:"certificate_url"`

	Impact           ImpactBlock     `json:"impact"`
	UserOrderDetails OrderDetails    `json:"user_order_details"`
	ApprovalDetails  ApprovalDetails `json:"approval_details"`
}

type OrdersSummary struct {
	TotalOrders     int `json:"total_orders"`
	CompletedOrders int `json:"completed_orders"`
	PendingOrders   int `json:"pending_orders"`
	RejectedOrders  int `json:"rejected_orders"`
	UnpaidOrders    int `json:"unpaid_orders"`
}

type ListOrdersOutput struct {
	Orders  []*OrderOutput `json:"orders"`
	Summary OrdersSummary  `json:"summary"`
}

// BatchApprovalOutput reports partial-failure counts: one donor's email
// failing must not block approving the rest.
type BatchApprovalOutput struct {
	Approved    int `json:"approved"`
	Emailed     int `json:"emailed"`
	FailedEmail int `json:"failed_email"`
}

type MonthlyGrowth struct {
	Month string `json:"month"`
	Trees int64  `json:"trees"`
}

type ImpactMetrics struct {
	TreesPlanted         int64   `json:"trees_planted"`
	ApprovedTreesPlanted int64   `json:"approved_trees_planted"`
	CO2OffsetTonnes      float64 `json:"co2_offset_tonnes"`
	CO2OffsetTonnesYear  float64 `json:"co2_offset_tonnes_per_year"`
	CO2OffsetKgYear      float64 `json:"co2_offset_kg_per_year"`
	DonationsINRTotal    float64 `json:"donations_inr_total"`
	ActiveDonors         int64   `json:"active_donors"`
	GlobalDonors         int64   `json:"global_donors"`
	ApprovedProjects     int64   `json:"approved_projects"`
	TotalProjects        int64   `json:"total_projects"`
	ApprovalRatePercent  float64 `json:"approval_rate_percent"`
}

type ImpactGrowth struct {
	MonthlyGrowth    []MonthlyGrowth `json:"monthly_growth"`
	PeakMonthlyTrees int64           `json:"peak_monthly_trees"`
}

type ImpactCommitment struct {
	OperationsSharePercent int    `json:"operations_share_percent"`
	PlantationSharePercent int    `json:"plantation_share_percent"`
	TransparencyPercent    int    `json:"transparency_percent"`
	MonitoringSupport      string `json:"monitoring_support"`
}

type ImpactBenchmarks struct {
	CommunitySurvivalRatePercent int `json:"community_survival_rate_percent"`
	IndustrySurvivalRatePercent  int `json:"industry_survival_rate_percent"`
}

type ImpactOutput struct {
	Metrics    ImpactMetrics    `json:"metrics"`
	Growth     ImpactGrowth     `json:"growth"`
	Commitment ImpactCommitment `json:"commitment"`
	Benchmarks ImpactBenchmarks `json:"benchmarks"`
}
