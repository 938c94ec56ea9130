package donationdto

import "time"

type CreateOrderInput struct {
	UserID           uint
	FullName         string
	Email            string
	Phone            string
	NumberOfTrees    int64
	TreeSpecies      string
	PlantingLocation string
	Latitude         *float64
	Longitude        *float64
	Objective        string
	DedicationName   string
	Notes            string
}

type VerifyPaymentInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
}

// UpdateOrderInput carries only the mutable fields; nil means "leave as is".
type UpdateOrderInput struct {
	FullName         *string
	Phone            *string
	NumberOfTrees    *int64
	TreeSpecies      *string
	PlantingLocation *string
	Latitude         *float64
	Longitude        *float64
	Objective        *string
	DedicationName   *string
	Notes            *string
}

// ProofInput is the operator-supplied plantation evidence attached on
// approval. Unset fields are default-filled from the order.
type ProofInput struct {
	PlantedLocation   string
	PlantedLatitude   *float64
	PlantedLongitude  *float64
	PlantationDate    *time.Time
	TreesPlantedCount *int64
	PlantationUpdate  string
	ProofImage1URL    string
	ProofImage2URL    string
	ThankYouNote      string
}

type ApproveOrdersInput struct {
	IDs   []uint
	Proof *ProofInput
}
