package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUserWithSeedAccount inserts a new user together with their seed
// account in a single database transaction, so a registered user never exists
// without the default account. Returns apperrors.ErrEmailTaken when the email
// is already registered.
func (r *UserRepository) CreateUserWithSeedAccount(user model.User, account model.Account) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	_, err = tx.Exec(`
		INSERT INTO user (id, email, display_name, password_hash)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Email, user.DisplayName, user.PasswordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO account (id, user_id, name, type, balance, currency)
		VALUES (?, ?, ?, ?, ?, ?)
	`, account.ID, account.UserID, account.Name, account.Type, account.Balance, account.Currency)
	if err != nil {
		return fmt.Errorf("failed to insert seed account: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user registration: %w", err)
	}

	return nil
}

// ListIDs returns the IDs of all registered users, for batch jobs that run
// per user.
func (r *UserRepository) ListIDs() ([]string, error) {
	rows, err := r.db.Query(`SELECT id FROM user ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query user table: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// FindByEmail retrieves a user by email address.
// Returns apperrors.ErrUserNotFound when no user matches.
func (r *UserRepository) FindByEmail(email string) (model.User, error) {
	var u model.User
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at
		FROM user
		WHERE email = ?
	`, email).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user table: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return u, nil
}

// FindByID retrieves a user by ID.
// Returns apperrors.ErrUserNotFound when no user matches.
func (r *UserRepository) FindByID(id string) (model.User, error) {
	var u model.User
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at
		FROM user
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &createdAtStr)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user table: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return u, nil
}
