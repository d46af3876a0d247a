package session

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// formValues is the validated view of a Form
type formValues struct {
	GameweekID   int64              `json:"gameweekId" validate:"required,gt=0"`
	Competition  domain.Competition `json:"competition" validate:"required,competition"`
	SessionType  domain.SessionType `json:"sessionType" validate:"required,session_type"`
	BuyInAmount  decimal.Decimal    `json:"buyInAmount" validate:"-"`
	IsPrivate    bool               `json:"isPrivate" validate:"-"`
	AccessKey    string             `json:"accessKey" validate:"-"`
	buyInInvalid bool
}

// Form owns the session-join draft for one gameweek.
// Not safe for concurrent use; the owning workspace serialises access.
type Form struct {
	values formValues
}

// NewForm creates a form for the gameweek with no session type and a zero buy-in
func NewForm(gw *domain.Gameweek) *Form {
	return &Form{values: formValues{
		GameweekID:  gw.ID,
		Competition: gw.Competition,
	}}
}

// SetSessionType sets the requested session type. Unknown types are stored and reported by Validate.
func (f *Form) SetSessionType(t domain.SessionType) {
	f.values.SessionType = t
}

// SetBuyIn sets the buy-in amount
func (f *Form) SetBuyIn(amount decimal.Decimal) {
	f.values.BuyInAmount = amount
	f.values.buyInInvalid = false
}

// SetBuyInString parses and sets a buy-in amount typed by the user.
// Unparseable input zeroes the amount and is reported by Validate until corrected.
func (f *Form) SetBuyInString(raw string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		f.values.BuyInAmount = decimal.Zero
		f.values.buyInInvalid = true
		return fmt.Errorf("%w: %q", domain.ErrInvalidBuyIn, raw)
	}
	f.SetBuyIn(amount)
	return nil
}

// SetPrivate flips the private flag. Switching to public clears the access key,
// which also drops its required rule; switching to private changes nothing else.
func (f *Form) SetPrivate(private bool) {
	f.values.IsPrivate = private
	if !private {
		f.values.AccessKey = ""
	}
}

// SetAccessKey sets the private session access key
func (f *Form) SetAccessKey(key string) {
	f.values.AccessKey = key
}

// IsPrivate reports the current private flag
func (f *Form) IsPrivate() bool {
	return f.values.IsPrivate
}

// AccessKeyRequired reports whether the access key is currently a required field
func (f *Form) AccessKeyRequired() bool {
	return f.values.IsPrivate
}

// Validate checks the current values. It never fails; problems come back as FieldErrors.
func (f *Form) Validate() []FieldError {
	return formatValidationError(getValidator().Struct(f.values))
}

// Request builds a fresh join request from the current values
func (f *Form) Request() domain.SessionJoinRequest {
	req := domain.SessionJoinRequest{
		GameweekID:  f.values.GameweekID,
		Competition: f.values.Competition,
		SessionType: f.values.SessionType,
		BuyInAmount: f.values.BuyInAmount,
		IsPrivate:   f.values.IsPrivate,
	}
	if req.IsPrivate {
		req.AccessKey = strings.TrimSpace(f.values.AccessKey)
	}
	return req
}

// Restore loads a saved draft. Gameweek and competition always come from the form's own gameweek.
func (f *Form) Restore(saved domain.SessionJoinRequest) {
	f.SetSessionType(saved.SessionType)
	f.SetBuyIn(saved.BuyInAmount)
	f.SetPrivate(saved.IsPrivate)
	if saved.IsPrivate {
		f.SetAccessKey(saved.AccessKey)
	}
}

// SessionTypeOption is a selectable session type for the form
type SessionTypeOption struct {
	Value domain.SessionType `json:"value"`
	Label string             `json:"label"`
}

// SessionTypeOptions lists the selectable session types with display labels
func SessionTypeOptions() []SessionTypeOption {
	opts := make([]SessionTypeOption, 0, len(domain.AllSessionTypes))
	for _, t := range domain.AllSessionTypes {
		opts = append(opts, SessionTypeOption{Value: t, Label: SessionTypeLabel(t)})
	}
	return opts
}

// SessionTypeLabel renders ONE_VS_ONE as "One Vs One"
func SessionTypeLabel(t domain.SessionType) string {
	words := strings.ReplaceAll(strings.ToLower(string(t)), "_", " ")
	return cases.Title(language.English).String(words)
}
