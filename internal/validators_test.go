package internal_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/notifique/alert/internal"
)

func TestAlertIdValidator(t *testing.T) {

	v := validator.New()
	v.RegisterValidation("alertid", internal.AlertIdValidator)

	tests := []struct {
		id    string
		valid bool
	}{
		{id: "email", valid: true},
		{id: "new-comment", valid: true},
		{id: "security.login_2", valid: true},
		{id: "Email", valid: false},
		{id: "-email", valid: false},
		{id: "with space", valid: false},
		{id: "a#b", valid: false},
		{id: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := v.Var(tt.id, "alertid")
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}
