package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"geoclima.app/pkg/errors"
	"geoclima.app/pkg/validation"
)

// QueryKind distinguishes free-text place names from explicit coordinates
type QueryKind int

const (
	QueryKindUnknown QueryKind = iota
	QueryKindName
	QueryKindCoordinates
)

// String returns the string representation of query kind
func (k QueryKind) String() string {
	switch k {
	case QueryKindName:
		return "name"
	case QueryKindCoordinates:
		return "coords"
	default:
		return "unknown"
	}
}

// Coordinates is a WGS84 latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lon" yaml:"lon"`
}

// DefaultFallback is used whenever geocoding produces no match
var DefaultFallback = Coordinates{Latitude: 11.2588, Longitude: 75.7804}

// IsValid checks coordinate ranges
func (c Coordinates) IsValid() error {
	if !validation.IsValidLatitude(c.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(c.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// String renders the pair the way it was supplied, without padding zeros
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// PlaceQuery is either a place name or a coordinate pair
type PlaceQuery struct {
	Kind        QueryKind
	Text        string
	Coordinates Coordinates
}

// NewNameQuery builds a name-kind query
func NewNameQuery(text string) (PlaceQuery, error) {
	trimmed, ok := validation.TrimAndValidate(text)
	if !ok {
		return PlaceQuery{}, errors.NewValidationError("place name cannot be empty")
	}
	return PlaceQuery{Kind: QueryKindName, Text: trimmed}, nil
}

// NewCoordinatesQuery builds a coords-kind query
func NewCoordinatesQuery(lat, lon float64) (PlaceQuery, error) {
	coords := Coordinates{Latitude: lat, Longitude: lon}
	if err := coords.IsValid(); err != nil {
		return PlaceQuery{}, errors.NewValidationError(err.Error())
	}
	return PlaceQuery{Kind: QueryKindCoordinates, Coordinates: coords}, nil
}

// ParsePlaceQuery classifies raw user input. Text shaped like "lat,lon" must be in range.
func ParsePlaceQuery(raw string) (PlaceQuery, error) {
	trimmed, ok := validation.TrimAndValidate(raw)
	if !ok {
		return PlaceQuery{}, errors.NewValidationError("place cannot be empty")
	}

	if validation.LooksLikeCoordinates(trimmed) {
		lat, lon, ok := validation.ParseCoordinates(trimmed)
		if !ok {
			return PlaceQuery{}, errors.NewValidationError("coordinates out of range: latitude must be within [-90,90] and longitude within [-180,180]")
		}
		return NewCoordinatesQuery(lat, lon)
	}

	return NewNameQuery(trimmed)
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizedText lower-cases and collapses whitespace so equivalent queries share a cache key
func (q PlaceQuery) NormalizedText() string {
	return whitespaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(q.Text)), " ")
}

// ResolvedLocation is the outcome of resolving a PlaceQuery.
// When Found is false DisplayName is nil and Coordinates hold the fallback.
type ResolvedLocation struct {
	Coordinates Coordinates
	DisplayName *string
	Found       bool
}

// Name returns the display name or an empty string
func (r ResolvedLocation) Name() string {
	if r.DisplayName == nil {
		return ""
	}
	return *r.DisplayName
}

// CustomCoordinatesLabel is the display name given to coords-kind queries
func CustomCoordinatesLabel(c Coordinates) string {
	return fmt.Sprintf("Custom coordinates (%s)", c.String())
}

func found(coords Coordinates, name string) ResolvedLocation {
	return ResolvedLocation{Coordinates: coords, DisplayName: &name, Found: true}
}

func notFound(fallback Coordinates) ResolvedLocation {
	return ResolvedLocation{Coordinates: fallback}
}
