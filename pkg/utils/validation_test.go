package utils

import (
	"testing"

	"github.com/omercangizik/AniKutusu1/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("ValidStruct", func(t *testing.T) {
		req := api.RegisterRequest{
			Email:       "ayse@example.com",
			Password:    "123456",
			DisplayName: "Ayşe",
		}
		assert.Nil(t, ValidateStruct(req))
	})

	t.Run("FieldsReportedByJSONName", func(t *testing.T) {
		errs := ValidateStruct(api.RegisterRequest{})
		require.Len(t, errs, 3)

		fields := make([]string, len(errs))
		for i, e := range errs {
			fields[i] = e.Field
		}
		assert.ElementsMatch(t, []string{"email", "password", "displayName"}, fields)
	})

	t.Run("TurkishMessages", func(t *testing.T) {
		errs := ValidateStruct(api.RegisterRequest{
			Email:       "not-an-email",
			Password:    "123",
			DisplayName: "Ayşe",
		})
		require.Len(t, errs, 2)

		byField := make(map[string]string, len(errs))
		for _, e := range errs {
			byField[e.Field] = e.Message
		}
		assert.Equal(t, "Geçerli bir e-posta adresi giriniz", byField["email"])
		assert.Equal(t, "Şifre en az 6 karakter olmalıdır", byField["password"])
	})

	t.Run("RequiredMessageUsesLabel", func(t *testing.T) {
		errs := ValidateStruct(api.LoginRequest{Email: "ayse@example.com"})
		require.Len(t, errs, 1)
		assert.Equal(t, "password", errs[0].Field)
		assert.Equal(t, "Şifre gereklidir", errs[0].Message)
	})
}
