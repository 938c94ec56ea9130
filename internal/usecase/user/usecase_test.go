package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gogreen/tree-donation-service/internal/config"
	"github.com/gogreen/tree-donation-service/internal/domain"
	"github.com/gogreen/tree-donation-service/internal/notification"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(u *domain.User) error {
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now().UTC()
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

type fakeReviewRepo struct {
	reviews  map[string]*domain.UserReview
	nextID   uint
	notReady bool
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*domain.UserReview), nextID: 1}
}

func (r *fakeReviewRepo) UpsertReviewByEmail(review *domain.UserReview) (bool, error) {
	existing, ok := r.reviews[review.Email]
	if ok {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
		review.UpdatedAt = time.Now().UTC()
		r.reviews[review.Email] = review
		return false, nil
	}
	review.ID = r.nextID
	r.nextID++
	review.CreatedAt = time.Now().UTC()
	review.UpdatedAt = review.CreatedAt
	r.reviews[review.Email] = review
	return true, nil
}

func (r *fakeReviewRepo) FindReviewByEmail(email string) (*domain.UserReview, error) {
	return r.reviews[email], nil
}

func (r *fakeReviewRepo) ListPublicReviews() ([]*domain.UserReview, error) {
	if r.notReady {
		return nil, domain.E(domain.KindNotReady, "relation does not exist")
	}
	var out []*domain.UserReview
	for _, review := range r.reviews {
		if review.IsPublic {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) SummarizeReviews() (*domain.ReviewSummary, error) {
	if r.notReady {
		return nil, domain.E(domain.KindNotReady, "relation does not exist")
	}
	summary := &domain.ReviewSummary{Breakdown: make(map[int]int64)}
	var sum int64
	for _, review := range r.reviews {
		summary.TotalReviews++
		summary.Breakdown[review.Rating]++
		sum += int64(review.Rating)
	}
	if summary.TotalReviews > 0 {
		summary.AverageRating = float64(sum) / float64(summary.TotalReviews)
	}
	return summary, nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) CreateSession(s *domain.Session) error {
	r.sessions[s.Token] = s
	return nil
}

func (r *fakeSessionRepo) FindActiveSession(token string, now time.Time) (*domain.Session, error) {
	s, ok := r.sessions[token]
	if !ok || !s.ExpiresAt.After(now) {
		return nil, domain.ErrInvalidSession
	}
	return s, nil
}

func (r *fakeSessionRepo) DeleteSession(token string) error {
	delete(r.sessions, token)
	return nil
}

type fakePublisher struct {
	published []domain.Message
}

func (p *fakePublisher) Publish(_ context.Context, _ string, msgs ...domain.Message) error {
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

type sentMail struct {
	Recipient string
	Subject   string
	Body      string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(recipient, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{recipient, subject, body})
	return nil
}

type maps struct{}

func (maps) LiveMapURL(_, _ *float64) string          { return "" }
func (maps) SearchURL(_, _ *float64, _ string) string { return "" }
func (maps) StaticMapURL(_, _ *float64) string        { return "" }

type testEnv struct {
	uc        *DefaultUserUsecase
	users     *fakeUserRepo
	reviews   *fakeReviewRepo
	sessions  *fakeSessionRepo
	publisher *fakePublisher
	mailer    *fakeMailer
}

func newTestEnv() *testEnv {
	cfg := &config.DonationConfig{}
	cfg.Pricing.SessionTTLHours = 720
	cfg.Notifications.SupportEmail = "support@gogreen.test"
	cfg.Notifications.SupportWhatsApp = "98765 43210"

	users := newFakeUserRepo()
	reviews := newFakeReviewRepo()
	sessions := newFakeSessionRepo()
	publisher := &fakePublisher{}
	mailer := &fakeMailer{}

	builder := notification.NewBuilder("https://gogreen.test", 21, maps{})
	dispatcher := notification.NewDispatcher(publisher, "notification-events", nil)

	return &testEnv{
		uc:        NewDefaultUserUsecase(users, reviews, sessions, dispatcher, builder, mailer, cfg),
		users:     users,
		reviews:   reviews,
		sessions:  sessions,
		publisher: publisher,
		mailer:    mailer,
	}
}
