package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boostoracle/internal/domain"
)

type fakeService struct {
	dec domain.Decision
	err error
}

func (f *fakeService) Evaluate(_ context.Context, id domain.OfferID) (domain.Decision, error) {
	if f.err != nil {
		return domain.Decision{}, f.err
	}
	dec := f.dec
	dec.OfferID = id
	return dec, nil
}

func serve(t *testing.T, svc Service, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	New(svc, nil).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandleEvaluateMissingOfferID(t *testing.T) {
	w := serve(t, &fakeService{}, "/evaluate")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]any{"error": "No offerId provided"}, decodeBody(t, w))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHandleEvaluateInvalidOfferID(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "0", "1.5"} {
		w := serve(t, &fakeService{}, "/evaluate?offerId="+raw)
		assert.Equal(t, http.StatusBadRequest, w.Code, "offerId=%s", raw)
	}
}

func TestHandleEvaluatePendingResponse(t *testing.T) {
	svc := &fakeService{dec: domain.Decision{Result: false, Verdict: domain.VerdictAwaitingEngagement}}
	w := serve(t, svc, "/evaluate?offerId=7")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["offerId"])
	assert.Equal(t, false, body["result"])
	assert.NotContains(t, body, "v")
	assert.NotContains(t, body, "r")
	assert.NotContains(t, body, "s")
}

func TestHandleEvaluateSignedResponse(t *testing.T) {
	sig := domain.Signature{V: 28, R: [32]byte{0xaa}, S: [32]byte{0xbb}}
	svc := &fakeService{dec: domain.Decision{Result: true, Verdict: domain.VerdictCompletable, Signature: &sig}}
	w := serve(t, svc, "/evaluate?offerId=7")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	// Signed envelopes use the snake_case key.
	assert.Equal(t, float64(7), body["offer_id"])
	assert.NotContains(t, body, "offerId")
	assert.Equal(t, true, body["result"])
	assert.Equal(t, float64(28), body["v"])
	assert.Equal(t, sig.RHex(), body["r"])
	assert.Equal(t, sig.SHex(), body["s"])
}

func TestHandleEvaluateInternalError(t *testing.T) {
	w := serve(t, &fakeService{err: errors.New("ledger timeout: secret detail")}, "/evaluate?offerId=7")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]any{"error": "Internal server error"}, decodeBody(t, w))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotContains(t, w.Body.String(), "secret detail")
}

func TestHandleEvaluateRootMount(t *testing.T) {
	svc := &fakeService{dec: domain.Decision{Verdict: domain.VerdictAwaitingEngagement}}
	w := serve(t, svc, "/?offerId=7")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandlePreflight(t *testing.T) {
	r := chi.NewRouter()
	New(&fakeService{}, nil).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/evaluate", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
