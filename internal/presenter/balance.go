package presenter

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// BalanceInfo is the structured view of an insufficient-balance error
type BalanceInfo struct {
	Required        string            `json:"required,omitempty"`
	Current         string            `json:"current,omitempty"`
	Shortage        string            `json:"shortage,omitempty"`
	SuggestedBuyIns []decimal.Decimal `json:"suggestedBuyIns"`
}

// NewBalanceInfo derives the shortage and the affordable presets from backend details.
// Shortage is recomputed when both amounts parse, otherwise the backend's value is kept.
// Suggestions are empty when the current balance is unknown.
func NewBalanceInfo(details *domain.BalanceDetails, presets []decimal.Decimal) *BalanceInfo {
	if details == nil {
		return nil
	}

	info := &BalanceInfo{
		Required:        details.Required,
		Current:         details.Current,
		Shortage:        details.Shortage,
		SuggestedBuyIns: []decimal.Decimal{},
	}

	current, currentErr := decimal.NewFromString(details.Current)
	required, requiredErr := decimal.NewFromString(details.Required)

	if currentErr == nil && requiredErr == nil {
		shortage := required.Sub(current)
		if shortage.IsNegative() {
			shortage = decimal.Zero
		}
		info.Shortage = shortage.StringFixed(2)
	}

	if currentErr == nil {
		info.SuggestedBuyIns = SuggestBuyIns(presets, current)
	}
	return info
}

// SuggestBuyIns returns the presets the given balance can cover, in preset order
func SuggestBuyIns(presets []decimal.Decimal, balance decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(presets))
	for _, p := range presets {
		if p.LessThanOrEqual(balance) {
			out = append(out, p)
		}
	}
	return out
}

// ParsePresets converts preset strings into decimals
func ParsePresets(raw []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(raw))
	for _, r := range raw {
		d, err := decimal.NewFromString(r)
		if err != nil {
			return nil, err
		}
		if !d.IsPositive() {
			return nil, domain.ErrInvalidBuyIn
		}
		out = append(out, d)
	}
	return out, nil
}
