package session

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"travel/pkg/logger"

	"github.com/google/uuid"
)

// Manager owns the session lifecycle: login, profile updates, logout.
type Manager struct {
	store  *Store
	logger logger.Logger
	now    func() time.Time
	newID  func() string
	locks  *keyedLock
}

func NewManager(store *Store, log logger.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: log,
		now:    time.Now,
		newID:  uuid.NewString,
		locks:  newKeyedLock(),
	}
}

// Login starts a session with an empty profile.
func (m *Manager) Login(ctx context.Context, email, name string) (*Profile, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", ErrInvalidProfile)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	p := newProfile(m.newID(), email, name, m.now().UTC())
	if err := m.store.Save(ctx, p); err != nil {
		return nil, err
	}
	m.logger.Info("session started", logger.Field{Key: "session_id", Value: p.ID})
	return p, nil
}

func (m *Manager) Logout(ctx context.Context, id string) error {
	defer m.locks.lock(id)()
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	m.logger.Info("session ended", logger.Field{Key: "session_id", Value: id})
	return nil
}

func (m *Manager) Profile(ctx context.Context, id string) (*Profile, error) {
	return m.store.Load(ctx, id)
}

// UpdateProfile loads the profile, applies fn and saves the result. Nothing
// is saved when fn fails.
//
// Updates to one session are serialized within this process. Replicas sharing
// the Redis store can still interleave a load and save; the session is owned
// by one browser, so such overlaps are rare and the later write wins.
func (m *Manager) UpdateProfile(ctx context.Context, id string, fn func(*Profile) error) (*Profile, error) {
	defer m.locks.lock(id)()

	p, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RecordPlan remembers a saved budget plan on the session's profile.
func (m *Manager) RecordPlan(ctx context.Context, sessionID string, planID int64) error {
	_, err := m.UpdateProfile(ctx, sessionID, func(p *Profile) error {
		p.AddBudgetPlan(strconv.FormatInt(planID, 10))
		return nil
	})
	return err
}

func (m *Manager) SaveSearch(ctx context.Context, sessionID string, s SavedSearch) (*Profile, error) {
	s.ID = m.newID()
	s.SavedAt = m.now().UTC()
	return m.UpdateProfile(ctx, sessionID, func(p *Profile) error {
		p.AddSavedSearch(s)
		return nil
	})
}
