package internal

import (
	"reflect"
	r "regexp"

	"github.com/go-playground/validator/v10"
)

var alertIdRegex = r.MustCompile(`^[a-z0-9][a-z0-9_.-]*$`)

// AlertIdValidator accepts lowercase identifiers used for alert types and
// backends, e.g. "new-comment" or "email".
var AlertIdValidator validator.Func = func(fl validator.FieldLevel) bool {

	if fl.Field().Kind() != reflect.String {
		return false
	}

	return alertIdRegex.MatchString(fl.Field().String())
}
