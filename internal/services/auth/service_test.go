package auth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"rasbita/internal/adapters/memory"
	"rasbita/internal/domain"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := memory.New()
	svc := New(store, store, time.Hour, log)
	svc.cost = bcrypt.MinCost
	if _, err := svc.CreateAdmin(context.Background(), "Alice", "correct-horse", "", "Alice Admin"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	return svc, store
}

func TestLoginMeLogout(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	u, sess, err := svc.Login(ctx, " alice ", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Username != "alice" || u.Role != domain.RoleAdmin || u.FullName == nil || *u.FullName != "Alice Admin" {
		t.Errorf("unexpected user: %+v", u)
	}
	if sess.Token == "" || !sess.ExpiresAt.After(sess.CreatedAt) {
		t.Errorf("unexpected session: %+v", sess)
	}

	me, err := svc.Me(ctx, sess.Token)
	if err != nil {
		t.Fatalf("Me after login: %v", err)
	}
	if me.ID != u.ID {
		t.Errorf("Me returned user %d, want %d", me.ID, u.ID)
	}

	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Me(ctx, sess.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Me after logout = %v, want ErrUnauthenticated", err)
	}
	if store.SessionCount() != 0 {
		t.Errorf("expected no sessions after logout, got %d", store.SessionCount())
	}
	if err := svc.Logout(ctx, sess.Token); err != nil {
		t.Errorf("second Logout should be a no-op, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	if _, _, err := svc.Login(ctx, "alice", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := svc.Login(ctx, "mallory", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
	if store.SessionCount() != 0 {
		t.Error("failed logins must not create sessions")
	}
}

func TestMeExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	_, sess, err := svc.Login(ctx, "alice", "correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	svc.now = func() time.Time { return sess.ExpiresAt.Add(time.Second) }
	if _, err := svc.Me(ctx, sess.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("Me with expired session = %v, want ErrUnauthenticated", err)
	}
	if store.SessionCount() != 0 {
		t.Error("expired session should be deleted")
	}
}

func TestMeWithoutToken(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Me(context.Background(), ""); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.Me(context.Background(), "no-such-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("got %v, want ErrUnauthenticated", err)
	}
}

func TestCreateAdminValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	if _, err := svc.CreateAdmin(ctx, "bob", "short", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("short password: got %v", err)
	}
	if _, err := svc.CreateAdmin(ctx, "bob", "long-enough", "root", ""); err == nil {
		t.Error("expected invalid role error")
	}
	if _, err := svc.CreateAdmin(ctx, "ALICE", "long-enough", "", ""); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("duplicate username: got %v", err)
	}
	u, err := svc.CreateAdmin(ctx, "carol", "long-enough", domain.RoleViewer, "")
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if u.FullName != nil || u.Role != domain.RoleViewer {
		t.Errorf("unexpected user: %+v", u)
	}
}

func TestPurgeExpired(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	if _, _, err := svc.Login(ctx, "alice", "correct-horse"); err != nil {
		t.Fatal(err)
	}
	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	n, err := svc.PurgeExpired(ctx)
	if err != nil || n != 1 {
		t.Errorf("PurgeExpired = %d, %v; want 1, nil", n, err)
	}
	if store.SessionCount() != 0 {
		t.Error("expected sessions purged")
	}
}
