package postgres

import (
	"context"
	"time"

	"rasbita/internal/domain"
)

// AdminRepository

func (db *DB) CreateAdmin(ctx context.Context, u domain.AdminUser) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO admin_users (username, password_hash, role, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, u.Username, u.PasswordHash, u.Role, u.FullName).Scan(&id)
	return id, translate(err)
}

const adminColumns = `id, username, role, full_name, password_hash`

func (db *DB) AdminByUsername(ctx context.Context, username string) (domain.AdminUser, error) {
	var u domain.AdminUser
	err := db.Pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Role, &u.FullName, &u.PasswordHash)
	return u, translate(err)
}

func (db *DB) AdminByID(ctx context.Context, id int64) (domain.AdminUser, error) {
	var u domain.AdminUser
	err := db.Pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admin_users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Role, &u.FullName, &u.PasswordHash)
	return u, translate(err)
}

// SessionRepository

func (db *DB) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO admin_sessions (token, user_id, created_at, expires_at) VALUES ($1, $2, $3, $4)
	`, s.Token, s.UserID, s.CreatedAt, s.ExpiresAt)
	return translate(err)
}

func (db *DB) SessionByToken(ctx context.Context, token string) (domain.Session, error) {
	s := domain.Session{Token: token}
	err := db.Pool.QueryRow(ctx, `
		SELECT user_id, created_at, expires_at FROM admin_sessions WHERE token = $1
	`, token).Scan(&s.UserID, &s.CreatedAt, &s.ExpiresAt)
	return s, translate(err)
}

func (db *DB) DeleteSession(ctx context.Context, token string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM admin_sessions WHERE token = $1`, token)
	return err
}

func (db *DB) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
