package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	donationdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/donation"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUsers recognizes a single token "good-token" for user 7.
type stubUsers struct {
	loginOut   *userdto.LoginOutput
	loginErr   error
	registered []*userdto.RegisterInput
}

func (s *stubUsers) Register(_ context.Context, input *userdto.RegisterInput) (string, error) {
	s.registered = append(s.registered, input)
	return "registered", nil
}

func (s *stubUsers) VerifyOTP(*userdto.VerifyOTPInput) (string, error) { return "ok", nil }
func (s *stubUsers) ResendOTP(context.Context, string) (string, error) { return "ok", nil }
func (s *stubUsers) Logout(string) error                               { return nil }

func (s *stubUsers) Profile(uint) (*userdto.UserOutput, error) {
	return &userdto.UserOutput{ID: 7}, nil
}

func (s *stubUsers) SupportContact() *userdto.SupportContactOutput {
	return &userdto.SupportContactOutput{}
}

func (s *stubUsers) SendSupportRequest(*userdto.SupportRequestInput) error { return nil }

func (s *stubUsers) Login(*userdto.LoginInput) (*userdto.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubUsers) Authenticate(token string) (*domain.User, error) {
	if token == "good-token" {
		return &domain.User{ID: 7, Email: "asha@example.com", IsVerified: true}, nil
	}
	return nil, domain.ErrInvalidSession
}

func (s *stubUsers) UpdateProfile(uint, *userdto.UpdateProfileInput) (*userdto.UserOutput, error) {
	return &userdto.UserOutput{ID: 7}, nil
}

func (s *stubUsers) SubmitReview(uint, *userdto.SubmitReviewInput) (*userdto.ReviewOutput, bool, error) {
	return &userdto.ReviewOutput{}, true, nil
}

func (s *stubUsers) ListReviews(string) (*userdto.ListReviewsOutput, error) {
	return &userdto.ListReviewsOutput{}, nil
}

type stubDonations struct {
	verifyOut *donationdto.VerifyPaymentOutput
	verifyErr error
	trackErr  error
	approved  *donationdto.ApproveOrdersInput
}

func (s *stubDonations) CreateOrder(_ context.Context, input *donationdto.CreateOrderInput) (*donationdto.CreateOrderOutput, error) {
	return &donationdto.CreateOrderOutput{DonationID: 1, AmountPaise: input.NumberOfTrees * 9900}, nil
}

func (s *stubDonations) VerifyPayment(context.Context, *donationdto.VerifyPaymentInput) (*donationdto.VerifyPaymentOutput, error) {
	return s.verifyOut, s.verifyErr
}

func (s *stubDonations) ListUserOrders(uint) (*donationdto.ListOrdersOutput, error) {
	return &donationdto.ListOrdersOutput{}, nil
}

func (s *stubDonations) GetUserOrder(uint, uint) (*donationdto.OrderOutput, error) {
	return &donationdto.OrderOutput{}, nil
}

func (s *stubDonations) UpdateUserOrder(uint, uint, *donationdto.UpdateOrderInput) (*donationdto.OrderOutput, error) {
	return &donationdto.OrderOutput{}, nil
}

func (s *stubDonations) DeleteUserOrder(uint, uint) error { return nil }

func (s *stubDonations) TrackOrder(string) (*donationdto.OrderOutput, error) {
	if s.trackErr != nil {
		return nil, s.trackErr
	}
	return &donationdto.OrderOutput{ID: 1}, nil
}

func (s *stubDonations) ApproveOrders(_ context.Context, input *donationdto.ApproveOrdersInput) (*donationdto.BatchApprovalOutput, error) {
	s.approved = input
	return &donationdto.BatchApprovalOutput{Approved: len(input.IDs)}, nil
}

func (s *stubDonations) RejectOrders(ids []uint) (int, error)    { return len(ids), nil }
func (s *stubDonations) RestoreOrders(ids []uint) (int64, error) { return int64(len(ids)), nil }
func (s *stubDonations) Impact() (*donationdto.ImpactOutput, error) {
	return &donationdto.ImpactOutput{}, nil
}

type stubGeocoder struct {
	queries []string
}

func (g *stubGeocoder) Search(_ context.Context, query, _ string) ([]domain.GeocodeResult, error) {
	g.queries = append(g.queries, query)
	return []domain.GeocodeResult{{PlaceName: "Bengaluru", Latitude: 12.97, Longitude: 77.59}}, nil
}

func testRouter() (*gin.Engine, *stubUsers, *stubDonations, *stubGeocoder) {
	cfg := &config.DonationConfig{}
	cfg.Admin.APIKey = "sekrit"
	cfg.Pricing.TreePriceINR = 99
	cfg.Pricing.Currency = "INR"

	users := &stubUsers{}
	donations := &stubDonations{}
	geocoder := &stubGeocoder{}
	return NewRouter(cfg, users, donations, geocoder), users, donations, geocoder
}

func do(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProtectedRoutesRequireBearerToken(t *testing.T) {
	router, _, _, _ := testRouter()

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/users/profile/"},
		{http.MethodGet, "/api/trees/orders/"},
		{http.MethodPost, "/api/trees/create-order/"},
	} {
		rec := do(router, route.method, route.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", route.method, route.path, rec.Code)
		}
	}

	rec := do(router, http.MethodGet, "/api/users/profile/", "", map[string]string{
		"Authorization": "Bearer good-token",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", rec.Code)
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	router, _, donations, _ := testRouter()

	body := `{"ids":[1,2]}`
	rec := do(router, http.MethodPost, "/api/admin/orders/approve/", body, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("missing key: status = %d, want 403", rec.Code)
	}

	rec = do(router, http.MethodPost, "/api/admin/orders/approve/", body, map[string]string{
		"X-Admin-Key": "wrong",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key: status = %d, want 403", rec.Code)
	}

	rec = do(router, http.MethodPost, "/api/admin/orders/approve/", body, map[string]string{
		"X-Admin-Key": "sekrit",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("valid key: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if donations.approved == nil || len(donations.approved.IDs) != 2 {
		t.Errorf("approve input = %+v", donations.approved)
	}
}

func TestVerifyPaymentErrorMapping(t *testing.T) {
	router, _, donations, _ := testRouter()
	body := `{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"s"}`

	cases := []struct {
		err    error
		status int
	}{
		{domain.E(domain.KindIntegrity, "payment signature verification failed"), http.StatusBadRequest},
		{domain.E(domain.KindNotCompleted, "payment is not completed yet"), http.StatusBadRequest},
		{domain.ErrDonationNotFound, http.StatusNotFound},
		{domain.E(domain.KindUpstream, "gateway down"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		donations.verifyErr = tc.err
		rec := do(router, http.MethodPost, "/api/trees/verify-payment/", body, nil)
		if rec.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, rec.Code, tc.status)
		}
	}

	donations.verifyErr = nil
	donations.verifyOut = &donationdto.VerifyPaymentOutput{Message: "payment verified successfully", DonationID: 1}
	rec := do(router, http.MethodPost, "/api/trees/verify-payment/", body, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("success: status = %d", rec.Code)
	}

	// Missing fields never reach the usecase.
	rec = do(router, http.MethodPost, "/api/trees/verify-payment/", `{"razorpay_order_id":"o"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("partial body: status = %d, want 400", rec.Code)
	}
}

func TestGeocodeShortQuerySkipsUpstream(t *testing.T) {
	router, _, _, geocoder := testRouter()

	rec := do(router, http.MethodGet, "/api/trees/geocode/?q=ab", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(geocoder.queries) != 0 {
		t.Error("short query reached the geocoder")
	}
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = do(router, http.MethodGet, "/api/trees/geocode/?q=bengaluru", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(geocoder.queries) != 1 {
		t.Errorf("geocoder calls = %d, want 1", len(geocoder.queries))
	}
	if !strings.Contains(rec.Body.String(), "Bengaluru") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestTrackingIsPublic(t *testing.T) {
	router, _, donations, _ := testRouter()

	rec := do(router, http.MethodGet, "/api/trees/track/tok-abc/", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 without auth", rec.Code)
	}

	donations.trackErr = domain.ErrTrackingNotFound
	rec = do(router, http.MethodGet, "/api/trees/track/tok-missing/", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown token: status = %d, want 404", rec.Code)
	}
}

func TestPaymentConfigOmitsSecret(t *testing.T) {
	router, _, _, _ := testRouter()

	rec := do(router, http.MethodGet, "/api/trees/config/", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"tree_price_inr":99`) {
		t.Errorf("body = %s", body)
	}
	if strings.Contains(body, "secret") {
		t.Error("config endpoint leaked a secret field")
	}
}
