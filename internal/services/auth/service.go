package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"rasbita/internal/domain"
	"rasbita/internal/ports"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("not logged in")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

const minPasswordLen = 8

type Service struct {
	admins   ports.AdminRepository
	sessions ports.SessionRepository
	ttl      time.Duration
	log      logrus.FieldLogger
	now      func() time.Time
	cost     int
}

func New(admins ports.AdminRepository, sessions ports.SessionRepository, ttl time.Duration, log logrus.FieldLogger) *Service {
	return &Service{admins: admins, sessions: sessions, ttl: ttl, log: log, now: time.Now, cost: bcrypt.DefaultCost}
}

// Login checks credentials and opens a new session. Unknown users and wrong
// passwords fail identically.
func (s *Service) Login(ctx context.Context, username, password string) (domain.AdminUser, domain.Session, error) {
	u, err := s.admins.AdminByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.AdminUser{}, domain.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.AdminUser{}, domain.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.log.WithField("username", u.Username).Warn("failed admin login")
		return domain.AdminUser{}, domain.Session{}, ErrInvalidCredentials
	}
	now := s.now()
	sess := domain.Session{Token: uuid.NewString(), UserID: u.ID, CreatedAt: now, ExpiresAt: now.Add(s.ttl)}
	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		return domain.AdminUser{}, domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	s.log.WithField("username", u.Username).Info("admin logged in")
	return u, sess, nil
}

// Me resolves a session token to its user. Expired sessions are removed.
func (s *Service) Me(ctx context.Context, token string) (domain.AdminUser, error) {
	if token == "" {
		return domain.AdminUser{}, ErrUnauthenticated
	}
	sess, err := s.sessions.SessionByToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.AdminUser{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.AdminUser{}, err
	}
	if sess.Expired(s.now()) {
		if err := s.sessions.DeleteSession(ctx, token); err != nil {
			s.log.WithError(err).Warn("delete expired session")
		}
		return domain.AdminUser{}, ErrUnauthenticated
	}
	u, err := s.admins.AdminByID(ctx, sess.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.AdminUser{}, ErrUnauthenticated
	}
	return u, err
}

// Logout ends a session. Unknown tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := s.sessions.DeleteSession(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// CreateAdmin registers a new admin account.
func (s *Service) CreateAdmin(ctx context.Context, username, password, role, fullName string) (domain.AdminUser, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return domain.AdminUser{}, errors.New("username is required")
	}
	if len(password) < minPasswordLen {
		return domain.AdminUser{}, ErrWeakPassword
	}
	switch role {
	case "":
		role = domain.RoleAdmin
	case domain.RoleAdmin, domain.RoleViewer:
	default:
		return domain.AdminUser{}, fmt.Errorf("invalid role: %s", role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.AdminUser{}, err
	}
	u := domain.AdminUser{Username: username, Role: role, PasswordHash: string(hash)}
	if fullName != "" {
		u.FullName = &fullName
	}
	id, err := s.admins.CreateAdmin(ctx, u)
	if err != nil {
		return domain.AdminUser{}, err
	}
	u.ID = id
	return u, nil
}

// PurgeExpired deletes sessions past their expiry.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpiredSessions(ctx, s.now())
}
