package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":           "{field} is required",
		"required_if":        "{field} is required",
		"gte":                "{field} must be greater than or equal to {param}",
		"lte":                "{field} must be less than or equal to {param}",
		"oneof":              "{field} must be one of {param}",
		"max":                "{field} must be less than or equal to {param}",
		"min":                "{field} must be greater than or equal to {param}",
		"email":              "{field} must be a valid email address",
		"uuid":               "{field} must be a valid UUID",
		"date":               "{field} must be a date in YYYY-MM-DD format",
		"clock":              "{field} must be a time in HH:MM format",
		"mimetypes":          "{field} must be one of {param}",
		"maxfilesize":        "{field} must not exceed {param} MB",
		"reservation_status": "{field} is not a valid reservation status",
		"contact_status":     "{field} is not a valid contact status",
	}
)

func format(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

// message returns the first readable validation message.
func message(err error) string {
	var valErrors val.ValidationErrors
	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if errStr := messages[valErr.Tag()]; errStr != "" {
				return format(valErr)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// details returns one message per failed field.
func details(err error) []string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return nil
	}

	res := make([]string, 0, len(valErrors))
	for _, valErr := range valErrors {
		res = append(res, format(valErr))
	}

	return res
}
