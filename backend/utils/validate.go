package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct проверяет структуру по validate-тегам.
// Возвращает nil, если ошибок нет, иначе карту поле -> нарушенное правило.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"payload": err.Error()}
	}

	result := make(map[string]string, len(errs))
	for _, fe := range errs {
		result[fe.Field()] = fe.Tag()
	}
	return result
}
