package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var coordinatesRegex = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidLatitude validates latitude range
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude validates longitude range
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// LooksLikeCoordinates reports whether s has the "lat,lon" shape, regardless of range.
func LooksLikeCoordinates(s string) bool {
	return coordinatesRegex.MatchString(s)
}

// ParseCoordinates parses "lat,lon". ok is false when the shape or ranges are wrong.
func ParseCoordinates(s string) (lat, lon float64, ok bool) {
	m := coordinatesRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	if !IsValidLatitude(lat) || !IsValidLongitude(lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// Struct validates a struct using its `validate` tags and flattens the failures into one error.
func Struct(v interface{}) error {
	structValidatorOnce.Do(func() {
		structValidator = validator.New()
	})

	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}
