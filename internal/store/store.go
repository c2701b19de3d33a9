// Package store is the gorm-backed data access for products, categories and users.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row has the requested id or key.
	ErrNotFound = errors.New("not found")
	// ErrInvalidField is returned when a submitted value cannot be stored in its column.
	ErrInvalidField = errors.New("invalid field")
)

func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(id), 10, 64)
	if err != nil || n == 0 {
		return 0, ErrNotFound
	}
	return uint(n), nil
}

func parseInt(field, v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidField, field, v)
	}
	return n, nil
}

func parseUint(field, v string) (uint, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidField, field, v)
	}
	return uint(n), nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
