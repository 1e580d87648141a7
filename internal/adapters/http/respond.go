package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"rasbita/internal/domain"
	"rasbita/internal/services/assessments"
	"rasbita/internal/services/auth"
)

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

func badRequest(msg string) error { return &runtimeError{code: http.StatusBadRequest, msg: msg} }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	var rt *runtimeError
	var invalid *assessments.InvalidError
	switch {
	case errors.As(err, &rt):
		return rt.code
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrNotEditable):
		return http.StatusConflict
	case errors.Is(err, auth.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		msg = http.StatusText(status)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeBadRequest handles parameter binding and body decoding failures reported by
// the generated wrappers.
func (s *Server) writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// jsonResponse writes the domain types directly. It satisfies every generated
// response interface whose success body is JSON.
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) visit(w http.ResponseWriter) error {
	writeJSON(w, j.status, j.body)
	return nil
}

func (j jsonResponse) VisitGetHealthzResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitListMappingsResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitGetMappingResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitGetRiskMatrixResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitGetQuestionnaireResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitPostAssessmentResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitGetAssessmentResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitPostAssessmentDevicesResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitGetReportResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitGetAdminMeResponse(w http.ResponseWriter) error { return j.visit(w) }
func (j jsonResponse) VisitListAdminReportsResponse(w http.ResponseWriter) error { return j.visit(w) }

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
