package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO. The returned
// error is validator.ValidationErrors, which the error middleware maps to a
// 400 response.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
