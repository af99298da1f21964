package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ankitmav/venue-booking/internal/auth"
	"github.com/ankitmav/venue-booking/internal/model"
	"github.com/ankitmav/venue-booking/internal/repository"
)

// In-memory store and notifier fakes implementing the handler interfaces.
// They mirror the repository semantics (sentinel errors, ordering) closely
// enough for the workflow tests to be meaningful.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint64]model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, name, email, password string, _ int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		return 0, err
	}
	s.nextID++
	s.users[s.nextID] = model.User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	return s.nextID, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) SetResetToken(_ context.Context, userID uint64, tokenHash string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.ResetTokenHash = &tokenHash
	u.ResetExpiresAt = &exp
	s.users[userID] = u
	return nil
}

func (s *fakeUserStore) ResetPassword(_ context.Context, tokenHash, newPassword string, _ int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.ResetTokenHash != nil && *u.ResetTokenHash == tokenHash &&
			u.ResetExpiresAt != nil && u.ResetExpiresAt.After(time.Now().UTC()) {
			hash, err := auth.HashPassword(newPassword, bcrypt.MinCost)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			u.ResetTokenHash = nil
			u.ResetExpiresAt = nil
			s.users[id] = u
			return nil
		}
	}
	return repository.ErrResetTokenInvalid
}

// promote flips a user to the admin role, bypassing the public surface the
// same way a direct database update would.
func (s *fakeUserStore) promote(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[id]
	u.Role = model.RoleAdmin
	s.users[id] = u
}

type fakeBookingStore struct {
	mu       sync.Mutex
	nextID   uint64
	bookings map[uint64]model.Booking
	users    *fakeUserStore
}

func newFakeBookingStore(users *fakeUserStore) *fakeBookingStore {
	return &fakeBookingStore{bookings: make(map[uint64]model.Booking), users: users}
}

func (s *fakeBookingStore) Create(_ context.Context, b model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	b.ID = s.nextID
	b.Status = model.StatusPending
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	s.bookings[b.ID] = b
	return b, nil
}

func (s *fakeBookingStore) GetByID(_ context.Context, id uint64) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return model.Booking{}, repository.ErrBookingNotFound
	}
	return b, nil
}

func (s *fakeBookingStore) UpdateStatus(_ context.Context, id uint64, status string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return model.Booking{}, repository.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	s.bookings[id] = b
	return b, nil
}

func (s *fakeBookingStore) ListByUser(_ context.Context, userID uint64) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (s *fakeBookingStore) ListAllWithOwner(ctx context.Context) ([]model.BookingWithOwner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.BookingWithOwner, 0)
	for _, b := range s.bookings {
		row := model.BookingWithOwner{Booking: b}
		if u, err := s.users.GetByID(ctx, b.UserID); err == nil {
			row.OwnerName = u.Name
			row.OwnerEmail = u.Email
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

type fakeReviewStore struct {
	mu      sync.Mutex
	nextID  uint64
	reviews []model.Review
}

func newFakeReviewStore() *fakeReviewStore { return &fakeReviewStore{} }

func (s *fakeReviewStore) Create(_ context.Context, rv model.Review) (model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	rv.ID = s.nextID
	rv.CreatedAt = time.Now().UTC()
	s.reviews = append(s.reviews, rv)
	return rv, nil
}

func (s *fakeReviewStore) ListRecent(_ context.Context, limit int) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Review, len(s.reviews))
	copy(out, s.reviews)
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// sentMail records one delivered message.
type sentMail struct {
	Kind    string // "reset" | "owner" | "confirm"
	To      string
	URL     string
	Booking model.Booking
}

// recordMailer implements notify.Mailer and records every send. Setting Err
// makes every send fail, simulating a dead relay.
type recordMailer struct {
	mu   sync.Mutex
	Err  error
	Sent []sentMail
}

func (m *recordMailer) record(s sentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, s)
	return nil
}

func (m *recordMailer) SendPasswordReset(_ context.Context, to, resetURL string) error {
	return m.record(sentMail{Kind: "reset", To: to, URL: resetURL})
}

func (m *recordMailer) SendOwnerNewBooking(_ context.Context, to string, b model.Booking) error {
	return m.record(sentMail{Kind: "owner", To: to, Booking: b})
}

func (m *recordMailer) SendBookingConfirmed(_ context.Context, to string, b model.Booking) error {
	return m.record(sentMail{Kind: "confirm", To: to, Booking: b})
}

// emitted records one broadcast event.
type emitted struct {
	Event   string
	Payload interface{}
}

// recordBroadcaster implements notify.Broadcaster and records every emit.
type recordBroadcaster struct {
	mu     sync.Mutex
	Err    error
	Events []emitted
}

func (b *recordBroadcaster) Emit(_ context.Context, event string, payload interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.Events = append(b.Events, emitted{Event: event, Payload: payload})
	return nil
}
