package paper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks that p carries an id, title and authors, and that its
// citation count is not negative.
func Validate(p Paper) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate paper: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := jsonName(fe.Field())
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", name)
		case "gte":
			message = fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", name)
		}
		fields = append(fields, FieldError{Field: name, Message: message})
	}
	return &ValidationError{Message: "invalid paper data", Fields: fields}
}

func jsonName(field string) string {
	if field == "ID" {
		return "id"
	}
	return strings.ToLower(field[:1]) + field[1:]
}
