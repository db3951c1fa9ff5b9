package utils

import (
	"hospital-booking-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("date_only", validateDateOnly)

	// report fields by their json names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateOnlyLayout, fl.Field().String())
	return err == nil
}
