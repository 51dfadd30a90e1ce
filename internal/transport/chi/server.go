// Package chi exposes the question, order and health endpoints over HTTP.
package chi

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/supportdesk/internal/logger"
	healthuc "github.com/kailas-cloud/supportdesk/internal/usecase/health"
	orderuc "github.com/kailas-cloud/supportdesk/internal/usecase/order"
	queryuc "github.com/kailas-cloud/supportdesk/internal/usecase/query"
)

// Server holds the HTTP handlers.
type Server struct {
	query         *queryuc.Service
	orders        *orderuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	query *queryuc.Service,
	orders *orderuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		query:         query,
		orders:        orders,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Ask handles POST /ask.
func (s *Server) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := s.query.Answer(r.Context(), req.Question)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	docs := make([]RetrievedDoc, len(res.Results))
	for i, d := range res.Results {
		docs[i] = RetrievedDoc{ID: d.ID, Type: string(d.Type), Score: finite(d.Score)}
	}
	writeJSON(w, http.StatusOK, AskResponse{
		Answer:        queryuc.Compose(res.Results),
		RetrievedDocs: docs,
		Strategy:      string(res.Strategy),
	})
}

// OrderStatus handles POST /order-status.
func (s *Server) OrderStatus(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if !decode(w, r, &req) {
		return
	}

	r = r.WithContext(logger.With(r.Context(), zap.String("order_id", req.OrderID)))
	reply, err := s.orders.Status(r.Context(), req.OrderID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, OrderStatusResponse{Order: reply.Order, Message: reply.Message})
}

// CanReturn handles POST /can-return.
func (s *Server) CanReturn(w http.ResponseWriter, r *http.Request) {
	var req CanReturnRequest
	if !decode(w, r, &req) {
		return
	}

	r = r.WithContext(logger.With(r.Context(), zap.String("order_id", req.OrderID)))
	reply, err := s.orders.CanReturn(r.Context(), req.OrderID, req.CurrentDate)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CanReturnResponse{Eligible: reply.Eligible, Message: reply.Message})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    string(report.Status),
		Strategy:  report.Strategy,
		Documents: report.Documents,
		Checks:    checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// finite maps NaN and infinities, which JSON cannot carry, to 0.
// A zero query or stored vector yields a NaN cosine.
func finite(score float64) float64 {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return score
}

// writeJSON encodes before writing the header so an unencodable body
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{Code: CodeInternalError, Message: "encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
