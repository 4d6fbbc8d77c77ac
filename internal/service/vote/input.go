package vote

import "github.com/pixelaward/goty-backend/internal/domain"

// CastInput holds the parameters for casting a final vote.
type CastInput struct {
	CategoryID int64
	GameID     int64
}

// Validate checks all fields and collects all errors.
func (i CastInput) Validate() error {
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
