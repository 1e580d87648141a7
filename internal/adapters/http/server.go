package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	"github.com/sirupsen/logrus"

	"rasbita/internal/api"
	"rasbita/internal/domain"
	"rasbita/internal/mapping"
	"rasbita/internal/ports"
	"rasbita/internal/questionnaire"
	"rasbita/internal/services/catalog"
	"rasbita/internal/workers/reportrunner"
)

// Catalog serves the static reference tables.
type Catalog interface {
	Mappings() []mapping.DomainMapping
	Mapping(sosParameter string) (mapping.DomainMapping, bool)
	Sections() []questionnaire.Section
	RiskMatrix() catalog.RiskMatrix
}

type Options struct {
	CookieSecure bool
	// InlineTimeout bounds ?wait=true submissions when the client gives no timeout.
	InlineTimeout time.Duration
}

// Server implements the generated StrictServerInterface.
type Server struct {
	auth        ports.Auth
	assessments ports.Assessments
	reports     ports.Reports
	catalog     Catalog
	jobs        ports.JobRepository
	processor   reportrunner.Processor
	log         logrus.FieldLogger
	opts        Options
}

var _ api.StrictServerInterface = (*Server)(nil)

const maxBodyBytes = 4 << 20

func New(auth ports.Auth, assessments ports.Assessments, reports ports.Reports, catalog Catalog,
	jobs ports.JobRepository, processor reportrunner.Processor, log logrus.FieldLogger, opts Options) *Server {
	if opts.InlineTimeout <= 0 {
		opts.InlineTimeout = 30 * time.Second
	}
	return &Server{
		auth: auth, assessments: assessments, reports: reports, catalog: catalog,
		jobs: jobs, processor: processor, log: log, opts: opts,
	}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(limitBody)

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{s.session}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.writeBadRequest,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.writeBadRequest,
	})
	return r
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

type ctxKey int

const (
	tokenKey ctxKey = iota
	adminKey
)

// adminOperations need a live admin or viewer session.
var adminOperations = []string{"listAdminReports"}

// session puts the sid cookie on the context for every operation and rejects
// admin operations without a valid session.
func (s *Server) session(f strictnethttp.StrictHTTPHandlerFunc, operationID string) strictnethttp.StrictHTTPHandlerFunc {
	admin := false
	for _, op := range adminOperations {
		admin = admin || strings.EqualFold(op, operationID)
	}
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request any) (any, error) {
		token := sessionToken(r)
		ctx = context.WithValue(ctx, tokenKey, token)
		if admin {
			u, err := s.auth.Me(ctx, token)
			if err != nil {
				return nil, err
			}
			if u.Role != domain.RoleAdmin && u.Role != domain.RoleViewer {
				return nil, &runtimeError{code: http.StatusForbidden, msg: "forbidden"}
			}
			ctx = context.WithValue(ctx, adminKey, u)
		}
		return f(ctx, w, r, request)
	}
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return jsonResponse{http.StatusOK, map[string]string{"status": "ok"}}, nil
}
