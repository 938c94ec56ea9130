package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/infrastructure/metrics"
	"github.com/gogreen/tree-donation-service/internal/notification"
)

// Prometheus collectors register globally, so the whole package shares one
// metrics instance.
var testMetrics = metrics.NewDonationMetrics()

type fakeDonationRepo struct {
	donations map[uint]*domain.TreeDonation
	nextID    uint

	impactTotals *domain.ImpactTotals
	growthRows   []domain.GrowthRow
	notReady     bool
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{donations: make(map[uint]*domain.TreeDonation), nextID: 1}
}

func (r *fakeDonationRepo) clone(d *domain.TreeDonation) *domain.TreeDonation {
	copied := *d
	return &copied
}

func (r *fakeDonationRepo) CreateDonation(d *domain.TreeDonation) error {
	d.ID = r.nextID
	r.nextID++
	d.CreatedAt = time.Now().UTC()
	r.donations[d.ID] = r.clone(d)
	return nil
}

func (r *fakeDonationRepo) GetDonationByID(id uint) (*domain.TreeDonation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, domain.ErrDonationNotFound
	}
	return r.clone(d), nil
}

func (r *fakeDonationRepo) GetDonationByOrderID(orderID string) (*domain.TreeDonation, error) {
	for _, d := range r.donations {
		if d.GatewayOrderID == orderID {
			return r.clone(d), nil
		}
	}
	return nil, domain.ErrDonationNotFound
}

func (r *fakeDonationRepo) GetDonationByTrackingToken(token string) (*domain.TreeDonation, error) {
	for _, d := range r.donations {
		if d.TrackingToken == token {
			return r.clone(d), nil
		}
	}
	return nil, domain.ErrTrackingNotFound
}

func (r *fakeDonationRepo) GetDonationsByUserID(userID uint) ([]*domain.TreeDonation, error) {
	var out []*domain.TreeDonation
	for id := uint(1); id < r.nextID; id++ {
		d, ok := r.donations[id]
		if ok && d.UserID == userID && !d.IsUserDeleted {
			out = append(out, r.clone(d))
		}
	}
	return out, nil
}

func (r *fakeDonationRepo) UpdateDonation(d *domain.TreeDonation) error {
	if _, ok := r.donations[d.ID]; !ok {
		return domain.ErrDonationNotFound
	}
	r.donations[d.ID] = r.clone(d)
	return nil
}

func (r *fakeDonationRepo) MarkPaymentFailed(orderID string) error {
	for _, d := range r.donations {
		if d.GatewayOrderID == orderID && d.PaymentStatus != domain.PaymentPaid {
			d.PaymentStatus = domain.PaymentFailed
		}
	}
	return nil
}

func (r *fakeDonationRepo) CommitPaid(orderID, paymentID, signature string, paidAt time.Time) (bool, error) {
	for _, d := range r.donations {
		if d.GatewayOrderID != orderID {
			continue
		}
		if d.PaymentStatus == domain.PaymentPaid {
			return false, nil
		}
		d.PaymentStatus = domain.PaymentPaid
		d.GatewayPaymentID = paymentID
		d.GatewaySignature = signature
		at := paidAt
		d.PaidAt = &at
		return true, nil
	}
	return false, domain.ErrDonationNotFound
}

func (r *fakeDonationRepo) SoftDeleteDonation(id uint, at time.Time) error {
	d, ok := r.donations[id]
	if !ok {
		return domain.ErrDonationNotFound
	}
	d.IsUserDeleted = true
	deletedAt := at
	d.UserDeletedAt = &deletedAt
	return nil
}

func (r *fakeDonationRepo) RestoreDonations(ids []uint) (int64, error) {
	var restored int64
	for _, id := range ids {
		if d, ok := r.donations[id]; ok && d.IsUserDeleted {
			d.IsUserDeleted = false
			d.UserDeletedAt = nil
			restored++
		}
	}
	return restored, nil
}

func (r *fakeDonationRepo) AggregateImpact() (*domain.ImpactTotals, error) {
	if r.notReady {
		return nil, domain.E(domain.KindNotReady, "relation does not exist")
	}
	if r.impactTotals != nil {
		return r.impactTotals, nil
	}
	return &domain.ImpactTotals{}, nil
}

func (r *fakeDonationRepo) ListPaidGrowthRows() ([]domain.GrowthRow, error) {
	if r.notReady {
		return nil, domain.E(domain.KindNotReady, "relation does not exist")
	}
	return r.growthRows, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *fakeUserRepo) CreateUser(u *domain.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) UpdateUser(u *domain.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindVerifiedUserByEmail(email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok || !u.IsVerified {
		return nil, domain.ErrVerifiedUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByID(id uint) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeGateway struct {
	orders      []domain.GatewayOrder
	payment     *domain.GatewayPayment
	createErr   error
	paymentErr  error
	getPayments int
}

func (g *fakeGateway) CreateOrder(_ context.Context, amountPaise int64, currency, receipt string, _ map[string]string) (*domain.GatewayOrder, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	order := domain.GatewayOrder{
		ID:       fmt.Sprintf("order_%d", len(g.orders)+1),
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	}
	g.orders = append(g.orders, order)
	return &order, nil
}

func (g *fakeGateway) GetPayment(_ context.Context, paymentID string) (*domain.GatewayPayment, error) {
	g.getPayments++
	if g.paymentErr != nil {
		return nil, g.paymentErr
	}
	if g.payment != nil {
		return g.payment, nil
	}
	return &domain.GatewayPayment{ID: paymentID, Status: "captured"}, nil
}

type fakePublisher struct {
	published []domain.Message
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, _ string, msgs ...domain.Message) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msgs...)
	return nil
}

func (p *fakePublisher) events() []notification.Event {
	out := make([]notification.Event, 0, len(p.published))
	for _, msg := range p.published {
		var event notification.Event
		if err := json.Unmarshal(msg.Value, &event); err == nil {
			out = append(out, event)
		}
	}
	return out
}

type staticMaps struct{}

func (staticMaps) LiveMapURL(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return fmt.Sprintf("https://maps.test/live/%v/%v", *lat, *lon)
}

func (staticMaps) SearchURL(lat, lon *float64, locationText string) string {
	if lat == nil || lon == nil {
		return "https://maps.test/search?q=" + locationText
	}
	return fmt.Sprintf("https://maps.test/search/%v/%v", *lat, *lon)
}

func (staticMaps) StaticMapURL(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return fmt.Sprintf("https://maps.test/static/%v/%v", *lat, *lon)
}

func testConfig() *config.DonationConfig {
	cfg := &config.DonationConfig{}
	cfg.Razorpay.KeyID = "rzp_test_key"
	cfg.Razorpay.KeySecret = "test_secret"
	cfg.Notifications.AdminEmail = "admin@gogreen.test"
	cfg.Pricing.TreePriceINR = 99
	cfg.Pricing.Currency = "INR"
	cfg.Pricing.CarbonOffsetPerTree = 21
	return cfg
}

type testEnv struct {
	uc        *DefaultDonationUsecase
	donations *fakeDonationRepo
	users     *fakeUserRepo
	gateway   *fakeGateway
	publisher *fakePublisher
}

func newTestEnv() *testEnv {
	cfg := testConfig()
	donations := newFakeDonationRepo()
	users := newFakeUserRepo(&domain.User{
		ID:         7,
		FullName:   "Asha Verma",
		Email:      "asha@example.com",
		IsVerified: true,
	})
	gateway := &fakeGateway{}
	publisher := &fakePublisher{}

	builder := notification.NewBuilder("https://gogreen.test", cfg.Pricing.CarbonOffsetPerTree, staticMaps{})
	dispatcher := notification.NewDispatcher(publisher, "notification-events", testMetrics)

	return &testEnv{
		uc:        NewDefaultDonationUsecase(donations, users, gateway, dispatcher, builder, testMetrics, cfg),
		donations: donations,
		users:     users,
		gateway:   gateway,
		publisher: publisher,
	}
}
