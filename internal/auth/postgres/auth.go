package postgres

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCredentials(username string) (string, string, error) {
	var passwordHash string
	var accountType sql.NullString
	query := `SELECT password_hash, account_type FROM users WHERE username = ?`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&passwordHash, &accountType); err != nil {
		if err == sql.ErrNoRows {
			return "", "", fmt.Errorf("user not found")
		}
		return "", "", err
	}
	return passwordHash, accountType.String, nil
}

func (r *Repository) UsernameExists(username string) (bool, error) {
	var one int
	row := r.db.Raw(`SELECT 1 FROM users WHERE username = ?`, username).Row()
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repository) CreateUser(username, passwordHash, accountType string) error {
	return r.db.Exec(
		`INSERT INTO users (username, password_hash, account_type) VALUES (?, ?, ?)`,
		username, passwordHash, accountType,
	).Error
}
