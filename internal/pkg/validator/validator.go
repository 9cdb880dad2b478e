package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/batchmv/batchmv/internal/pkg/utils"
)

// Validate a struct according to the "validate" tags.
// Field names in error messages follow the "json" tags.
func Validate(value interface{}) error {
	validate, enTranslator := newValidator()

	if err := validate.Struct(value); err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			return processValidateError(validationErrs, enTranslator)
		default:
			panic(err)
		}
	}

	return nil
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	// Register default EN translator
	enLocale := en.New()
	enTranslator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, enTranslator); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	// Use JSON field name in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return validate, enTranslator
}

func processValidateError(err validator.ValidationErrors, translator ut.Translator) error {
	result := utils.NewMultiError()
	for _, e := range err {
		result.Append(errors.New(e.Translate(translator)))
	}

	return result.ErrorOrNil()
}
