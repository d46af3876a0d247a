package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Matchday_Go/internal/domain"
)

func newTestClient(srv *httptest.Server) *Client {
	c := New(srv.URL, "svc-key")
	c.RetryDelay = time.Millisecond
	return c
}

func intPtr(v int) *int { return &v }

func sampleRequest() *domain.SubmitPredictionsRequest {
	return &domain.SubmitPredictionsRequest{
		UserID:      "user-1",
		GameweekID:  7,
		Competition: domain.CompetitionPremierLeague,
		Predictions: []domain.PredictionPayload{
			{MatchID: 1, PredictedResult: domain.PickHomeWin},
			{MatchID: 2, PredictedResult: domain.PickDraw, PredictedHomeScore: intPtr(1), PredictedAwayScore: intPtr(1)},
		},
		SessionType: domain.SessionOneVsOne,
		BuyInAmount: decimal.NewFromInt(20),
		IsPrivate:   false,
		Complete:    true,
	}
}

func TestSubmitPredictions_RequestShape(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, PathSubmitPredictions, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get(HeaderAuthorization))
		assert.Equal(t, "svc-key", r.Header.Get(HeaderAPIKey))

		q := r.URL.Query()
		assert.Equal(t, "ONE_VS_ONE", q.Get(domain.QueryParamSessionType))
		assert.Equal(t, "20", q.Get(domain.QueryParamBuyInAmount))
		assert.Equal(t, "false", q.Get(domain.QueryParamIsPrivate))
		assert.False(t, q.Has(domain.QueryParamAccessKey))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"userId":"user-1","gameweekId":7,"competition":"PREMIER_LEAGUE",
			"predictions":[
				{"matchId":1,"predictedResult":"HOME_WIN"},
				{"matchId":2,"predictedResult":"DRAW","predictedHomeScore":1,"predictedAwayScore":1}
			],
			"sessionType":"ONE_VS_ONE","buyInAmount":"20","isPrivate":false,"complete":true
		}`, string(raw))

		w.Header().Set(HeaderContentType, ContentTypeJSON)
		_, _ = w.Write([]byte(`{"predictions":[],"sessionParticipation":{"id":3,"sessionId":9,"userId":"user-1"}}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", sampleRequest())
	require.NoError(t, err)
	require.NotNil(t, resp.SessionParticipation)
	assert.Equal(t, int64(9), resp.SessionParticipation.SessionID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSubmitPredictions_PrivateSendsAccessKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get(domain.QueryParamIsPrivate))
		assert.Equal(t, "k3y", r.URL.Query().Get(domain.QueryParamAccessKey))
		raw, _ := io.ReadAll(r.Body)
		assert.NotContains(t, string(raw), "accessKey")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	req := sampleRequest()
	req.IsPrivate = true
	req.AccessKey = "k3y"
	_, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", req)
	require.NoError(t, err)
}

func TestSubmitPredictions_StructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(domain.APIErrorBody{
			Success: false,
			Error:   domain.CodeInsufficientBalance,
			Message: "Not enough funds",
			Details: &domain.BalanceDetails{Required: "50.00", Current: "20.00"},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", sampleRequest())

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusPaymentRequired, apiErr.StatusCode)
	assert.Equal(t, domain.CodeInsufficientBalance, apiErr.Body.Error)
	require.NotNil(t, apiErr.Body.Details)
	assert.Equal(t, "50.00", apiErr.Body.Details.Required)
}

func TestSubmitPredictions_ErrorBodyWithOKStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"already joined", `{"success":false,"error":"ALREADY_JOINED","message":"You already joined this session"}`, domain.CodeAlreadyJoined},
		{"session full", `{"success":false,"error":"SESSION_FULL","message":"Session is full"}`, domain.CodeSessionFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", sampleRequest())
			assert.Nil(t, resp)

			var apiErr *domain.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, http.StatusOK, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Body.Error)
		})
	}
}

func TestSubmitPredictions_OKBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"participation", `{"predictions":[],"sessionParticipation":{"sessionId":3}}`},
		{"success flag with code", `{"success":true,"error":"IGNORED"}`},
		{"not json", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", sampleRequest())
			require.NoError(t, err)
			assert.NotNil(t, resp)
		})
	}
}

func TestSubmitPredictions_NeverRetries(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error html", http.StatusBadGateway, "<html>bad gateway</html>"},
		{"server error empty", http.StatusInternalServerError, ""},
		{"json without code", http.StatusBadRequest, `{"success":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", sampleRequest())

			require.Error(t, err)
			var apiErr *domain.APIError
			assert.False(t, errors.As(err, &apiErr), "unstructured bodies are not API errors")
			assert.ErrorIs(t, err, domain.ErrUnexpectedStatusCode)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestSubmitPredictions_UndecodableSuccessIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	resp, err := newTestClient(srv).SubmitPredictions(context.Background(), "tok", sampleRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestSubmitPredictions_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	c := newTestClient(srv)
	srv.Close()

	_, err := c.SubmitPredictions(context.Background(), "tok", sampleRequest())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestGetGameweek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gameweeks/7", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get(HeaderAuthorization))
		_, _ = w.Write([]byte(`{
			"id":7,"competition":"PREMIER_LEAGUE","number":12,
			"matches":[{"id":1,"homeTeam":"Arsenal","awayTeam":"Chelsea","isTiebreaker":false},
			           {"id":2,"homeTeam":"Leeds","awayTeam":"Everton","isTiebreaker":true}]
		}`))
	}))
	defer srv.Close()

	gw, err := newTestClient(srv).GetGameweek(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gw.ID)
	assert.Equal(t, domain.CompetitionPremierLeague, gw.Competition)
	require.Len(t, gw.Matches, 2)
	assert.True(t, gw.Matches[1].IsTiebreaker)
}

func TestGetGameweek_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusNotFound, domain.ErrGameweekNotFound},
		{http.StatusUnauthorized, domain.ErrUnauthenticated},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusTeapot, domain.ErrUnexpectedStatusCode},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestClient(srv).GetGameweek(context.Background(), "tok", 7)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetGameweek_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":7,"matches":[]}`))
	}))
	defer srv.Close()

	gw, err := newTestClient(srv).GetGameweek(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gw.ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetGameweek_GivesUp(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.MaxRetries = 2
	_, err := c.GetGameweek(context.Background(), "tok", 7)

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSubmitQuery(t *testing.T) {
	req := sampleRequest()
	req.AccessKey = "ignored-when-public"

	q := SubmitQuery(req)
	assert.False(t, q.Has(domain.QueryParamAccessKey))

	req.IsPrivate = true
	q = SubmitQuery(req)
	assert.Equal(t, "ignored-when-public", q.Get(domain.QueryParamAccessKey))
}
