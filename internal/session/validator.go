package session

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Matchday_Go/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the package validator, configured on first use
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		// Report JSON names rather than Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation(TagCompetition, validateCompetition)
		_ = v.RegisterValidation(TagSessionType, validateSessionType)
		v.RegisterStructValidation(formStructValidation, formValues{})

		validate = v
	})
	return validate
}

func validateCompetition(fl validator.FieldLevel) bool {
	return domain.Competition(fl.Field().String()).Valid()
}

func validateSessionType(fl validator.FieldLevel) bool {
	return domain.SessionType(fl.Field().String()).Valid()
}

// formStructValidation enforces the cross-field rules the tags can't express:
// a strictly positive buy-in and the access key being present iff the session is private.
func formStructValidation(sl validator.StructLevel) {
	f := sl.Current().Interface().(formValues)

	if f.buyInInvalid {
		sl.ReportError(f.BuyInAmount, FieldBuyIn, "BuyInAmount", TagInvalidAmount, "")
	} else if !f.BuyInAmount.IsPositive() {
		sl.ReportError(f.BuyInAmount, FieldBuyIn, "BuyInAmount", TagPositiveAmount, "")
	}

	key := strings.TrimSpace(f.AccessKey)
	switch {
	case f.IsPrivate && key == "":
		sl.ReportError(f.AccessKey, FieldAccessKey, "AccessKey", TagAccessKeyRequired, "")
	case !f.IsPrivate && f.AccessKey != "":
		sl.ReportError(f.AccessKey, FieldAccessKey, "AccessKey", TagAccessKeyExcluded, "")
	}
}

// FieldError is a single validation failure, addressed by JSON field name
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// formatValidationError converts validator output into FieldErrors.
// Anything that isn't a validator.ValidationErrors becomes a single generic entry.
func formatValidationError(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Rule: "", Message: MsgInvalidValue}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   e.Field(),
			Rule:    e.Tag(),
			Message: messageFor(e.Field(), e.Tag()),
		})
	}
	return out
}

func messageFor(field, tag string) string {
	switch tag {
	case TagRequired:
		switch field {
		case FieldSessionType:
			return MsgSessionTypeRequired
		case FieldCompetition:
			return MsgCompetitionRequired
		case FieldGameweekID:
			return MsgGameweekRequired
		}
	case TagSessionType:
		return MsgSessionTypeInvalid
	case TagCompetition:
		return MsgCompetitionInvalid
	case TagPositiveAmount:
		return MsgBuyInPositive
	case TagInvalidAmount:
		return MsgBuyInFormat
	case TagAccessKeyRequired:
		return MsgAccessKeyRequired
	case TagAccessKeyExcluded:
		return MsgAccessKeyExcluded
	}
	return MsgInvalidValue
}
