package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shopadmin/internal/models"
)

// ErrUsernameTaken is returned by Users.Create for a duplicate username.
var ErrUsernameTaken = errors.New("username taken")

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) ByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&u).Error
	if err != nil {
		return u, fmt.Errorf("user %q: %w", username, notFound(err))
	}
	return u, nil
}

// Create hashes password and stores a new user.
func (s *Users) Create(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidField)
	}

	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&cnt).Error; err != nil {
		return models.User{}, fmt.Errorf("count users: %w", err)
	}
	if cnt > 0 {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{Username: username, PasswordHash: hash}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
