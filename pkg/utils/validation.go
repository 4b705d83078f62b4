package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/omercangizik/AniKutusu1/pkg/api"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their json names so clients see the same keys they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Turkish labels for user-facing validation messages.
var fieldLabels = map[string]string{
	"email":       "E-posta",
	"password":    "Şifre",
	"displayName": "İsim",
	"title":       "Başlık",
	"description": "Açıklama",
	"date":        "Tarih",
}

// ValidateStruct validates a struct based on its validation tags and returns
// one FieldError per failing field. A nil result means the struct is valid.
func ValidateStruct(s interface{}) []api.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []api.FieldError{{Field: "", Message: err.Error()}}
	}

	errs := make([]api.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, api.FieldError{
			Field:   e.Field(),
			Message: formatFieldError(e),
		})
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	label, ok := fieldLabels[e.Field()]
	if !ok {
		label = e.Field()
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s gereklidir", label)
	case "email":
		return "Geçerli bir e-posta adresi giriniz"
	case "min":
		return fmt.Sprintf("%s en az %s karakter olmalıdır", label, e.Param())
	case "max":
		return fmt.Sprintf("%s en fazla %s karakter olmalıdır", label, e.Param())
	default:
		return fmt.Sprintf("%s geçersiz", label)
	}
}
