package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
	}
)

// message renders every validation error, so a request missing several
// required fields reports all of them at once.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		rendered := make([]string, 0, len(valErrors))

		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				rendered = append(rendered, valErr.Error())

				continue
			}

			errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

			rendered = append(rendered, errStr)
		}

		return strings.Join(rendered, ", ")
	}

	return err.Error()
}
