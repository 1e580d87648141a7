package httpadapter

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"rasbita/internal/api"
	"rasbita/internal/inventory"
)

func (s *Server) ListMappings(ctx context.Context, _ api.ListMappingsRequestObject) (api.ListMappingsResponseObject, error) {
	return jsonResponse{http.StatusOK, s.catalog.Mappings()}, nil
}

func (s *Server) GetMapping(ctx context.Context, req api.GetMappingRequestObject) (api.GetMappingResponseObject, error) {
	m, ok := s.catalog.Mapping(req.Parameter)
	if !ok {
		return jsonResponse{http.StatusNotFound, map[string]string{"error": "unknown sos parameter"}}, nil
	}
	return jsonResponse{http.StatusOK, m}, nil
}

func (s *Server) GetRiskMatrix(ctx context.Context, _ api.GetRiskMatrixRequestObject) (api.GetRiskMatrixResponseObject, error) {
	return jsonResponse{http.StatusOK, s.catalog.RiskMatrix()}, nil
}

func (s *Server) GetQuestionnaire(ctx context.Context, _ api.GetQuestionnaireRequestObject) (api.GetQuestionnaireResponseObject, error) {
	return jsonResponse{http.StatusOK, s.catalog.Sections()}, nil
}

// csvDownload serves a rendered CSV as a file attachment.
type csvDownload struct {
	filename string
	body     []byte
}

func (c csvDownload) VisitGetInventoryTemplateResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+c.filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(c.body)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(c.body)
	return err
}

func (s *Server) GetInventoryTemplate(ctx context.Context, _ api.GetInventoryTemplateRequestObject) (api.GetInventoryTemplateResponseObject, error) {
	var buf bytes.Buffer
	if err := inventory.Template(&buf); err != nil {
		return nil, err
	}
	return csvDownload{filename: inventory.TemplateFilename, body: buf.Bytes()}, nil
}
