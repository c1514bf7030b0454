package validator

import (
	"github.com/go-playground/validator/v10"
)

// companySizeBuckets - фиксированный набор значений размера компании,
// который отдает фронтенд в форме регистрации рекрутера.
var companySizeBuckets = map[string]bool{
	"1-10":     true,
	"11-50":    true,
	"51-200":   true,
	"201-1000": true,
	"1000+":    true,
}

// registerCustomRules регистрирует кастомные правила валидации.
func registerCustomRules(v *validator.Validate) error {
	// company_size: опциональное поле, но если задано - только из набора
	return v.RegisterValidation("company_size", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return companySizeBuckets[value]
	})
}
