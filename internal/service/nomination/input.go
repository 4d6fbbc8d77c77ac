package nomination

import "github.com/pixelaward/goty-backend/internal/domain"

// AddInput holds the parameters for adding a nomination.
type AddInput struct {
	CategoryID int64
	GameID     int64
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError
	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.GameID <= 0 {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveInput holds the parameters for withdrawing a nomination.
type RemoveInput struct {
	CategoryID int64
	GameID     int64
}

// Validate checks all fields and collects all errors.
func (i RemoveInput) Validate() error {
	var errs []domain.FieldError
	if i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.GameID <= 0 {
		errs = append(errs, domain.FieldError{Field: "game_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
