package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"boostoracle/internal/domain"
	"boostoracle/internal/platform/httputil"
	"boostoracle/pkg/requestcontext"
)

// Service defines the interface for offer evaluation.
type Service interface {
	Evaluate(ctx context.Context, offerID domain.OfferID) (domain.Decision, error)
}

// Handler wires the evaluation endpoint to the oracle service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an evaluation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register mounts the oracle endpoints. The root mount keeps compatibility
// with function-style invocation where the path is not configurable.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleEvaluate)
	r.Get("/evaluate", h.HandleEvaluate)
	r.Options("/", h.HandlePreflight)
	r.Options("/evaluate", h.HandlePreflight)
}

// HandlePreflight answers CORS preflight requests.
func (h *Handler) HandlePreflight(w http.ResponseWriter, _ *http.Request) {
	httputil.SetCORS(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleEvaluate handles GET /evaluate?offerId=N.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	httputil.SetCORS(w)

	raw := r.URL.Query().Get("offerId")
	if raw == "" {
		httputil.WriteError(w, http.StatusBadRequest, "No offerId provided")
		return
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httputil.WriteError(w, http.StatusBadRequest, "Invalid offerId")
		return
	}

	dec, err := h.service.Evaluate(ctx, domain.OfferID(id))
	if err != nil {
		h.logger.ErrorContext(ctx, "offer evaluation failed",
			"request_id", requestcontext.RequestID(ctx),
			"offer_id", id,
			"error", err,
		)
		httputil.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if dec.Signature == nil {
		httputil.WriteJSON(w, http.StatusOK, pendingResponse{
			OfferID: uint64(dec.OfferID),
			Result:  dec.Result,
		})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, signedResponse{
		OfferID: uint64(dec.OfferID),
		Result:  dec.Result,
		V:       dec.Signature.V,
		R:       dec.Signature.RHex(),
		S:       dec.Signature.SHex(),
	})
}

// pendingResponse is the unsigned envelope for non-terminal outcomes.
type pendingResponse struct {
	OfferID uint64 `json:"offerId"`
	Result  bool   `json:"result"`
}

// signedResponse is the attested envelope. The snake_case offer_id key is
// wire compatibility with the execution step and must not be changed.
type signedResponse struct {
	OfferID uint64 `json:"offer_id"`
	Result  bool   `json:"result"`
	V       uint8  `json:"v"`
	R       string `json:"r"`
	S       string `json:"s"`
}
