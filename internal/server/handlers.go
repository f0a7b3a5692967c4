package server

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/contactkeval/bsm-pricer/internal/pricing"
	"github.com/contactkeval/bsm-pricer/internal/validation"
)

// quoteRequest mirrors pricing.Inputs with every field required.
type quoteRequest struct {
	S     *float64 `json:"S" validate:"required"`
	K     *float64 `json:"K" validate:"required"`
	T     *float64 `json:"T" validate:"required"`
	R     *float64 `json:"r" validate:"required"`
	Sigma *float64 `json:"sigma" validate:"required"`
}

func (q quoteRequest) inputs() pricing.Inputs {
	return pricing.Inputs{Spot: *q.S, Strike: *q.K, Rate: *q.R, Expiry: *q.T, Vol: *q.Sigma}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { s.metrics.duration.Observe(time.Since(start).Seconds()) }()

	var req quoteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "bad_request", fmt.Errorf("invalid JSON body: %w", err))
		return
	}
	if err := validation.Validator().Struct(req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "bad_request", missingFields(err))
		return
	}

	in := req.inputs()
	if err := validation.ValidateInputs(in); err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, "domain_error", err)
		return
	}

	q := s.pricer.Price(in)

	// encoding/json cannot represent NaN or Inf
	if !finite(q.Call) || !finite(q.Put) {
		s.fail(w, r, http.StatusUnprocessableEntity, "non_finite", fmt.Errorf("quote is not finite: call=%v put=%v", q.Call, q.Put))
		return
	}

	s.metrics.quotes.WithLabelValues("ok").Inc()
	s.log.Debug("quote",
		zap.String("request_id", requestID(r)),
		zap.Any("inputs", in),
		zap.Float64("call", q.Call),
		zap.Float64("put", q.Put),
	)
	render.JSON(w, r, q)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, outcome string, err error) {
	s.metrics.quotes.WithLabelValues(outcome).Inc()
	s.log.Info("quote rejected",
		zap.String("request_id", requestID(r)),
		zap.Int("status", status),
		zap.Error(err),
	)
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, jsonName(fe.StructField()))
	}
	return fmt.Errorf("missing field(s): %s", strings.Join(names, ", "))
}

func jsonName(field string) string {
	switch field {
	case "R":
		return "r"
	case "Sigma":
		return "sigma"
	}
	return field
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
