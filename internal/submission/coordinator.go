package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/metrics"
	"github.com/osse101/Matchday_Go/internal/prediction"
	"github.com/osse101/Matchday_Go/internal/session"
)

// Remote is the backend operation the coordinator drives
type Remote interface {
	SubmitPredictions(ctx context.Context, token string, req *domain.SubmitPredictionsRequest) (*domain.SubmitPredictionsResponse, error)
}

// PredictionSet is the collector side of a submission
type PredictionSet interface {
	ValidateComplete() []prediction.Violation
	Payload() []domain.PredictionPayload
}

// SessionConfig is the form side of a submission
type SessionConfig interface {
	Validate() []session.FieldError
	Request() domain.SessionJoinRequest
}

// Submission is a point-in-time capture of everything a submit needs
type Submission struct {
	Violations  []prediction.Violation
	Predictions []domain.PredictionPayload
	FieldErrors []session.FieldError
	Session     domain.SessionJoinRequest
}

// Capture snapshots the predictions and session config
func Capture(preds PredictionSet, cfg SessionConfig) Submission {
	return Submission{
		Violations:  preds.ValidateComplete(),
		Predictions: preds.Payload(),
		FieldErrors: cfg.Validate(),
		Session:     cfg.Request(),
	}
}

// Coordinator merges predictions and session config into one backend request
// and converts whatever comes back into a SubmissionOutcome. It holds no state
// between calls and never retries on its own.
type Coordinator struct {
	remote  Remote
	catalog *Catalog
}

// NewCoordinator creates a coordinator. A nil catalog means DefaultCatalog.
func NewCoordinator(remote Remote, catalog *Catalog) *Coordinator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Coordinator{remote: remote, catalog: catalog}
}

// Submit validates and submits in one step
func (c *Coordinator) Submit(ctx context.Context, identity *domain.Identity, preds PredictionSet, cfg SessionConfig) domain.SubmissionOutcome {
	return c.SubmitCaptured(ctx, identity, Capture(preds, cfg))
}

// SubmitCaptured submits a previously captured submission.
// Local validation failures return without any network call.
func (c *Coordinator) SubmitCaptured(ctx context.Context, identity *domain.Identity, sub Submission) domain.SubmissionOutcome {
	log := logger.FromContext(ctx)

	if outcome, blocked := c.checkLocal(sub); blocked {
		log.Info(LogMsgSubmitShortCircuit, "code", outcome.ErrorCode, "gameweek_id", sub.Session.GameweekID)
		metrics.SubmissionsTotal.WithLabelValues(string(outcome.Kind), outcome.ErrorCode).Inc()
		return outcome
	}

	if identity == nil || identity.UserID == "" {
		outcome := c.catalog.Classify(domain.APIErrorBody{Error: domain.CodeUserNotLoggedIn})
		metrics.SubmissionsTotal.WithLabelValues(string(outcome.Kind), outcome.ErrorCode).Inc()
		return outcome
	}

	req := BuildRequest(identity.UserID, sub)

	log.Info(LogMsgSubmitStarted,
		"gameweek_id", req.GameweekID,
		"session_type", req.SessionType,
		"buy_in", req.BuyInAmount.String(),
		"private", req.IsPrivate,
		"predictions", len(req.Predictions))

	start := time.Now()
	resp, err := c.remote.SubmitPredictions(ctx, identity.Token, req)
	metrics.SubmissionDuration.Observe(time.Since(start).Seconds())

	outcome := c.interpret(resp, err)
	metrics.SubmissionsTotal.WithLabelValues(string(outcome.Kind), outcome.ErrorCode).Inc()

	if outcome.IsSuccess() {
		log.Info(LogMsgSubmitSucceeded, "gameweek_id", req.GameweekID)
	} else {
		log.Warn(LogMsgSubmitFailed, "gameweek_id", req.GameweekID, "kind", outcome.Kind, "code", outcome.ErrorCode, "error", err)
	}
	return outcome
}

// BuildRequest assembles the single combined request body
func BuildRequest(userID string, sub Submission) *domain.SubmitPredictionsRequest {
	return &domain.SubmitPredictionsRequest{
		UserID:      userID,
		GameweekID:  sub.Session.GameweekID,
		Competition: sub.Session.Competition,
		Predictions: sub.Predictions,
		SessionType: sub.Session.SessionType,
		BuyInAmount: sub.Session.BuyInAmount,
		IsPrivate:   sub.Session.IsPrivate,
		Complete:    len(sub.Violations) == 0,
		AccessKey:   sub.Session.AccessKey,
	}
}

func (c *Coordinator) checkLocal(sub Submission) (domain.SubmissionOutcome, bool) {
	if n := len(sub.Violations); n > 0 {
		msg := fmt.Sprintf("%s: "+prediction.MsgViolationsCount, MsgPredictionsIncomplete, n)
		return c.catalog.Local(domain.CodePredictionsIncomplete, msg), true
	}
	if len(sub.FieldErrors) > 0 {
		msgs := make([]string, 0, len(sub.FieldErrors))
		for _, fe := range sub.FieldErrors {
			msgs = append(msgs, fe.Message)
		}
		return c.catalog.Local(fieldErrorCode(sub.FieldErrors), strings.Join(msgs, "; ")), true
	}
	return domain.SubmissionOutcome{}, false
}

// fieldErrorCode picks the most specific backend-equivalent code for a set of form errors
func fieldErrorCode(errs []session.FieldError) string {
	has := func(field string) bool {
		for _, e := range errs {
			if e.Field == field {
				return true
			}
		}
		return false
	}
	switch {
	case has(session.FieldSessionType):
		return domain.CodeSessionTypeRequired
	case has(session.FieldAccessKey):
		return domain.CodeAccessKeyRequired
	case has(session.FieldBuyIn):
		return domain.CodeInvalidBuyInAmount
	}
	return domain.CodeValidationError
}

func (c *Coordinator) interpret(resp *domain.SubmitPredictionsResponse, err error) domain.SubmissionOutcome {
	if err == nil {
		var participation *domain.SessionParticipation
		if resp != nil {
			participation = resp.SessionParticipation
		}
		return domain.Success(MsgSuccess, participation)
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return c.catalog.Classify(apiErr.Body)
	}
	return c.catalog.NetworkError()
}
