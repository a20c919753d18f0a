package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/borsel2002/yollar-burada/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("category", validateCategory)
}

// NaN and infinities fail the range comparisons, so these also reject
// non-finite coordinates.
func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.MarkerCategory(fl.Field().String()).Valid()
}
