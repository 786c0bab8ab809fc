// Package validate owns the process-wide validator and its english translations.
// Failures come back as perr validation errors carrying the offending field
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "cryptokit/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Service holds the validator singleton and its translator
type Service struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Service
)

// Get returns the singleton, building it on first use
func Get() *Service {
	once.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		short(v, trans, "min", "{0} must be at least {1}")
		short(v, trans, "max", "{0} must be at most {1}")
		short(v, trans, "gt", "{0} must be greater than {1}")
		short(v, trans, "lte", "{0} must be at most {1}")
		short(v, trans, "gte", "{0} must be at least {1}")

		svc = &Service{Validator: v, Translator: trans}
	})
	return svc
}

// Struct validates s against its `validate` tags
func Struct(s any) error {
	return translate(Get().Validator.Struct(s), "")
}

// Var validates a single value against tag, reporting failures under field
func Var(field string, v any, tag string) error {
	return translate(Get().Validator.Var(v, tag), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}

func translate(err error, field string) error {
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return perr.Wrap(inv, perr.ErrorCodeUnknown, "validator misuse")
	}
	f, msg := FieldAndMessage(err)
	if field != "" {
		// Var errors carry an empty field name; the translation starts with it
		msg = field + msg
		f = field
	}
	return perr.WithField(perr.New(perr.ErrorCodeValidation, msg), f)
}

func jsonName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
