package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError carries a 400 status through the error middleware.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateRequest runs struct-tag validation and folds the failures into one
// readable message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return &ValidationError{Message: err.Error()}
		}

		var parts []string
		for _, fe := range errs {
			parts = append(parts, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
		}
		return &ValidationError{Message: strings.Join(parts, "; ")}
	}
	return nil
}
