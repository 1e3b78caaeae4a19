package pipeline

import (
	"strings"

	"geoclima.app/internal/core/location"
	"geoclima.app/pkg/errors"
	"geoclima.app/pkg/validation"
)

// Request is one user submission
type Request struct {
	Place string `json:"place" yaml:"place" validate:"required"`
	Date  string `json:"date" yaml:"date" validate:"required"`
	Plans string `json:"plans" yaml:"plans" validate:"required"`
}

// Validate is the caller-side precondition check. Run assumes it passed.
func (r Request) Validate() error {
	trimmed := Request{
		Place: strings.TrimSpace(r.Place),
		Date:  strings.TrimSpace(r.Date),
		Plans: strings.TrimSpace(r.Plans),
	}
	if err := validation.Struct(trimmed); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if _, err := location.ParsePlaceQuery(trimmed.Place); err != nil {
		return err
	}
	return nil
}
