package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages shown for each failing rule.
const (
	MessageSelectOption = "Please select an option"
	MessageAcceptTerms  = "Please accept the terms and conditions"
	MessageRequired     = "This field is required"
	MessageEmail        = "Please enter a valid email address"
	MessagePhone        = "Please enter a valid phone number"
)

// Validator tags registered by New.
const (
	TagRequired = "form_required"
	TagEmail    = "form_email"
	TagPhone    = "form_phone"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{8,}$`)
)

func requiredRule(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func emailRule(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func phoneRule(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func registerRules(v *validator.Validate) error {
	rules := []struct {
		tag string
		fn  validator.Func
	}{
		{TagRequired, requiredRule},
		{TagEmail, emailRule},
		{TagPhone, phoneRule},
	}
	for _, rule := range rules {
		if err := v.RegisterValidation(rule.tag, rule.fn); err != nil {
			return err
		}
	}
	return nil
}
