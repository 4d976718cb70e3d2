package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("class_tokens", func(fl validator.FieldLevel) bool {
			return validClassTokens(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// validClassTokens accepts whitespace-separated utility classes. Markup
// delimiters and control characters are rejected so a token can be written
// into a class attribute verbatim.
func validClassTokens(s string) bool {
	for _, token := range strings.Fields(s) {
		if strings.ContainsAny(token, "\"'<>`") {
			return false
		}
		for _, r := range token {
			if r < 0x20 || r == 0x7f {
				return false
			}
		}
	}
	return true
}
