package testutil

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vedsagar/educrm/core"
)

// InitValidators sets up the shared validator the way main does. Call it
// from TestMain in packages whose tests exercise model validation.
func InitValidators() {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validator.New(), translator)
}
