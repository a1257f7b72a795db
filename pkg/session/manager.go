package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pennyledger/pkg/generator"
)

type MySQLSessionRepo struct {
	DB *sql.DB
}

func NewMySQLSessionRepo(db *sql.DB) *MySQLSessionRepo {
	return &MySQLSessionRepo{DB: db}
}

// Create issues a fresh opaque token for userID and returns the raw value.
// Only the SHA-256 hash reaches storage.
func (r *MySQLSessionRepo) Create(userID string) (string, error) {
	token, err := generator.NewToken()
	if err != nil {
		return "", fmt.Errorf("token gen error: %w", err)
	}

	_, err = r.DB.Exec(`
		INSERT INTO sessions (token_hash, user_id, created_at)
		VALUES (?, ?, ?)
	`, generator.HashToken(token), userID, time.Now().UTC())
	if err != nil {
		return "", err
	}

	return token, nil
}

func (r *MySQLSessionRepo) Resolve(token string) (string, error) {
	var userID string
	err := r.DB.QueryRow(`
		SELECT user_id FROM sessions WHERE token_hash = ?
	`, generator.HashToken(token)).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSession
		}
		return "", err
	}
	return userID, nil
}

// Revoke is idempotent: deleting an absent session is not an error.
func (r *MySQLSessionRepo) Revoke(token string) error {
	_, err := r.DB.Exec(`
		DELETE FROM sessions WHERE token_hash = ?
	`, generator.HashToken(token))
	return err
}
