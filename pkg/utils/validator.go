package utils

import (
	"errors"
	"strings"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/go-playground/validator/v10"
)

// MinReleaseYear is the year of the earliest surviving motion picture.
const MinReleaseYear = 1888

var releaseDateLayouts = []string{"2006-01-02", "2006-01", "2006"}

var errReleaseDateFormat = errors.New("release date must be YYYY, YYYY-MM or YYYY-MM-DD")

// ParseReleaseYear extracts the calendar year from a YYYY, YYYY-MM or YYYY-MM-DD string.
func ParseReleaseYear(value string) (int, error) {
	value = strings.TrimSpace(value)
	for _, layout := range releaseDateLayouts {
		if len(value) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.Year(), nil
		}
	}
	return 0, errReleaseDateFormat
}

// MaxReleaseYear allows announced titles up to one year ahead.
func MaxReleaseYear(now time.Time) int {
	return now.Year() + 1
}

// NewValidator builds a validator with the catalog tags registered.
// now is consulted on every release_year check.
func NewValidator(now func() time.Time) *validator.Validate {
	v := validator.New()

	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return entity.Genre(fl.Field().String()).Valid()
	})

	v.RegisterValidation("release_date", func(fl validator.FieldLevel) bool {
		_, err := ParseReleaseYear(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("release_year", func(fl validator.FieldLevel) bool {
		year, err := ParseReleaseYear(fl.Field().String())
		if err != nil {
			return false
		}
		return year >= MinReleaseYear && year <= MaxReleaseYear(now())
	})

	return v
}

// FieldErrors unwraps validator failures in struct field order.
func FieldErrors(err error) []validator.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	return validationErrors
}

// GenreList joins the selectable genres for messages.
func GenreList() string {
	names := make([]string, len(entity.Genres))
	for i, g := range entity.Genres {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
