package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/task-manager/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrReferentialIntegrity = errors.New("record is still referenced by other records")
	ErrDuplicate            = errors.New("already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func duplicate(field string) error {
	return &ValidationError{Field: field, Reason: "a record with this value already exists", Err: ErrDuplicate}
}

func notFound(entity string, id uint64) error {
	return fmt.Errorf("%s %d %w", entity, id, ErrNotFound)
}

// translate converts repository and gorm errors into the service error taxonomy.
func translate(entity string, id uint64, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(entity, id)
	case errors.Is(err, repository.ErrHasDependents):
		return fmt.Errorf("cannot delete %s %d: %w", entity, id, ErrReferentialIntegrity)
	case errors.Is(err, repository.ErrDuplicate):
		return duplicate(entity)
	case errors.Is(err, repository.ErrMissingReference):
		return invalid("", "references a record that does not exist")
	}
	return fmt.Errorf("%s %d: %w", entity, id, err)
}
