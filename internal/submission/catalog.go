package submission

import (
	"strings"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// Entry is how one backend error code is presented
type Entry struct {
	Kind        domain.OutcomeKind
	Message     string
	Suggestions []string
}

// Catalog maps backend error codes to outcome buckets.
// Adding a code is a table change; Classify holds no per-code logic.
type Catalog struct {
	entries  map[string]Entry
	prefixes map[string]Entry
	fallback Entry
}

var defaultCatalog = NewCatalog()

// DefaultCatalog returns the shared catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog builds the code table
func NewCatalog() *Catalog {
	retry := func(msg string, suggestions ...string) Entry {
		return Entry{Kind: domain.OutcomeRetryable, Message: msg, Suggestions: suggestions}
	}
	fatal := func(msg string) Entry {
		return Entry{Kind: domain.OutcomeFatal, Message: msg}
	}

	return &Catalog{
		entries: map[string]Entry{
			domain.CodeInsufficientBalance: retry(MsgInsufficientBalance, SuggestLowerBuyIn, SuggestTopUp),
			domain.CodeAlreadyJoined:       retry(MsgAlreadyJoined, SuggestCheckSessions),
			domain.CodeSessionFull:         retry(MsgSessionFull, SuggestOtherSession),
			domain.CodeTermsNotAccepted:    retry(MsgTermsNotAccepted, SuggestAcceptTerms),
			domain.CodeValidationError:     retry(MsgValidationError, SuggestReviewEntries),
			domain.CodeGameweekNotFound:    retry(MsgGameweekNotFound, SuggestPickGameweek),
			domain.CodeInvalidBuyInAmount:  retry(MsgInvalidBuyInAmount, SuggestPresetBuyIn),
			domain.CodeSessionTypeRequired: retry(MsgSessionTypeRequired, SuggestSelectType),
			domain.CodeAccessKeyRequired:   retry(MsgAccessKeyRequired, SuggestEnterAccessKey),
			domain.CodeNetworkError:        retry(MsgNetworkError, SuggestCheckConnection),

			domain.CodeUserNotLoggedIn: fatal(MsgNotLoggedIn),
			domain.CodeUnauthorized:    fatal(MsgUnauthorized),
			domain.CodeForbidden:       fatal(MsgForbidden),
			domain.CodeTokenExpired:    fatal(MsgTokenExpired),
		},
		prefixes: map[string]Entry{
			domain.CodePredictionsPrefix: retry(MsgPredictionsProblem, SuggestCompletePicks),
		},
		fallback: retry(MsgUnknownError, SuggestRetry),
	}
}

// Lookup returns the entry for code. Unrecognized codes get the retryable fallback.
func (c *Catalog) Lookup(code string) Entry {
	if e, ok := c.entries[code]; ok {
		return e
	}
	for prefix, e := range c.prefixes {
		if strings.HasPrefix(code, prefix) {
			return e
		}
	}
	return c.fallback
}

// Classify converts a structured backend error body into an outcome.
// Backend message and suggestions win over the catalog defaults when present.
func (c *Catalog) Classify(body domain.APIErrorBody) domain.SubmissionOutcome {
	entry := c.Lookup(body.Error)

	message := body.Message
	if message == "" {
		message = entry.Message
	}

	if entry.Kind == domain.OutcomeFatal {
		return domain.Fatal(body.Error, message)
	}

	suggestions := body.Suggestions
	if len(suggestions) == 0 {
		suggestions = append([]string(nil), entry.Suggestions...)
	}

	code := body.Error
	if code == "" {
		code = domain.CodeUnknown
	}
	var details *domain.BalanceDetails
	if body.Details != nil {
		d := *body.Details
		details = &d
	}
	return domain.Retryable(code, message, details, suggestions...)
}

// NetworkError is the outcome for transport failures and unparseable error responses
func (c *Catalog) NetworkError() domain.SubmissionOutcome {
	entry := c.Lookup(domain.CodeNetworkError)
	return domain.Retryable(domain.CodeNetworkError, entry.Message, nil, entry.Suggestions...)
}

// Local builds a retryable outcome for a locally detected problem
func (c *Catalog) Local(code, message string) domain.SubmissionOutcome {
	entry := c.Lookup(code)
	if message == "" {
		message = entry.Message
	}
	return domain.Retryable(code, message, nil, entry.Suggestions...)
}
