package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"rasbita/internal/api"
	"rasbita/internal/domain"
	"rasbita/internal/inventory"
	"rasbita/internal/ports"
	"rasbita/internal/risk"
	"rasbita/internal/workers/reportrunner"
)

type submitAccepted struct {
	AssessmentID int64  `json:"assessmentId"`
	Status       string `json:"status"`
}

func submitInput(b *api.PostAssessmentJSONRequestBody) ports.SubmitInput {
	in := ports.SubmitInput{
		BusinessName: b.BusinessName,
		Industry:     value(b.Industry),
		Location:     value(b.Location),
		Website:      value(b.Website),
		ReportType:   value(b.ReportType),
		Answers:      value(b.Answers),
	}
	for _, d := range value(b.Devices) {
		in.Devices = append(in.Devices, risk.Device{
			Name:               d.Name,
			Type:               d.Type,
			OS:                 value(d.Os),
			Owner:              value(d.Owner),
			InternetFacing:     value(d.InternetFacing),
			Encrypted:          value(d.Encrypted),
			Patched:            value(d.Patched),
			EndpointProtection: value(d.EndpointProtection),
			SensitiveData:      value(d.SensitiveData),
		})
	}
	return in
}

func (s *Server) PostAssessment(ctx context.Context, req api.PostAssessmentRequestObject) (api.PostAssessmentResponseObject, error) {
	if req.Body == nil {
		return nil, badRequest("missing body")
	}
	id, err := s.assessments.Submit(ctx, submitInput(req.Body))
	if err != nil {
		return nil, err
	}
	// Blocking path for clients that want the report in the response
	if !value(req.Params.Wait) {
		return jsonResponse{http.StatusAccepted, submitAccepted{AssessmentID: id, Status: domain.StatusQueued}}, nil
	}

	d := s.opts.InlineTimeout
	if t := value(req.Params.Timeout); t > 0 {
		d = time.Duration(t) * time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	// Use the same processor the workers use
	err = reportrunner.ProcessInline(waitCtx, s.jobs, s.processor, id)
	if errors.Is(err, domain.ErrNotFound) {
		// a background worker claimed the job first
		err = s.awaitWorker(waitCtx, id)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, notReady(id)
	}
	if err != nil {
		return nil, err
	}
	a, err := s.assessments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.ReportID == nil {
		return nil, fmt.Errorf("assessment %d completed without a report", id)
	}
	report, err := s.reports.Get(ctx, *a.ReportID)
	if err != nil {
		return nil, err
	}
	return jsonResponse{http.StatusOK, report}, nil
}

// notReady tells a blocking client where to poll once its wait ran out.
func notReady(id int64) error {
	return &runtimeError{code: http.StatusGatewayTimeout, msg: "report not ready, poll GET /api/assessments/" + strconv.FormatInt(id, 10)}
}

// awaitWorker polls until the assessment reaches a terminal status.
func (s *Server) awaitWorker(ctx context.Context, id int64) error {
	t := time.NewTicker(200 * time.Millisecond)
	defer t.Stop()
	for {
		a, err := s.assessments.Get(ctx, id)
		if err != nil {
			return err
		}
		switch a.Status {
		case domain.StatusCompleted:
			return nil
		case domain.StatusFailed:
			return fmt.Errorf("report generation failed for assessment %d", id)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (s *Server) GetAssessment(ctx context.Context, req api.GetAssessmentRequestObject) (api.GetAssessmentResponseObject, error) {
	a, err := s.assessments.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return jsonResponse{http.StatusOK, a}, nil
}

// PostAssessmentDevices accepts a device inventory CSV either as a text/csv
// body or as the "file" part of a multipart form.
func (s *Server) PostAssessmentDevices(ctx context.Context, req api.PostAssessmentDevicesRequestObject) (api.PostAssessmentDevicesResponseObject, error) {
	var src io.Reader
	switch {
	case req.MultipartBody != nil:
		for {
			part, err := req.MultipartBody.NextPart()
			if errors.Is(err, io.EOF) {
				return nil, badRequest("missing file field")
			}
			if err != nil {
				return nil, badRequest("invalid multipart body")
			}
			if part.FormName() == "file" {
				defer part.Close()
				src = part
				break
			}
			part.Close()
		}
	case req.Body != nil:
		src = req.Body
	default:
		return nil, badRequest("expected text/csv or multipart/form-data")
	}
	devices, err := inventory.Parse(src)
	if err != nil {
		return nil, badRequest(err.Error())
	}
	if err := s.assessments.ReplaceDevices(ctx, req.Id, devices); err != nil {
		return nil, err
	}
	return jsonResponse{http.StatusOK, map[string]int{"devices": len(devices)}}, nil
}

func (s *Server) GetReport(ctx context.Context, req api.GetReportRequestObject) (api.GetReportResponseObject, error) {
	report, err := s.reports.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return jsonResponse{http.StatusOK, report}, nil
}

func (s *Server) ListAdminReports(ctx context.Context, req api.ListAdminReportsRequestObject) (api.ListAdminReportsResponseObject, error) {
	list, err := s.reports.List(ctx, value(req.Params.Limit))
	if err != nil {
		return nil, err
	}
	if u, ok := ctx.Value(adminKey).(domain.AdminUser); ok {
		s.log.WithField("admin", u.Username).WithField("count", len(list)).Debug("reports listed")
	}
	return jsonResponse{http.StatusOK, list}, nil
}
