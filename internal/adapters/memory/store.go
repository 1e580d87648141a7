// Package memory is an in-process implementation of the repository ports, used
// for local development without Postgres and in tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"rasbita/internal/domain"
	"rasbita/internal/ports"
	"rasbita/internal/risk"
)

type job struct {
	id           int64
	assessmentID int64
	status       string
	attempts     int
	reason       string
}

type Store struct {
	mu          sync.Mutex
	nextID      int64
	admins      map[int64]domain.AdminUser
	sessions    map[string]domain.Session
	assessments map[int64]domain.Assessment
	reports     map[int64]domain.AssessmentReport
	jobs        []*job
}

var (
	_ ports.AdminRepository      = (*Store)(nil)
	_ ports.SessionRepository    = (*Store)(nil)
	_ ports.AssessmentRepository = (*Store)(nil)
	_ ports.ReportRepository     = (*Store)(nil)
	_ ports.JobRepository        = (*Store)(nil)
)

func New() *Store {
	return &Store{
		admins:      make(map[int64]domain.AdminUser),
		sessions:    make(map[string]domain.Session),
		assessments: make(map[int64]domain.Assessment),
		reports:     make(map[int64]domain.AssessmentReport),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AdminRepository

func (s *Store) CreateAdmin(_ context.Context, u domain.AdminUser) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if existing.Username == u.Username {
			return 0, domain.ErrConflict
		}
	}
	u.ID = s.id()
	s.admins[u.ID] = u
	return u.ID, nil
}

func (s *Store) AdminByUsername(_ context.Context, username string) (domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.admins {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.AdminUser{}, domain.ErrNotFound
}

func (s *Store) AdminByID(_ context.Context, id int64) (domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.admins[id]
	if !ok {
		return domain.AdminUser{}, domain.ErrNotFound
	}
	return u, nil
}

// SessionRepository

func (s *Store) CreateSession(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sess.Token]; ok {
		return domain.ErrConflict
	}
	s.sessions[sess.Token] = sess
	return nil
}

func (s *Store) SessionByToken(_ context.Context, token string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return domain.Session{}, domain.ErrNotFound
	}
	return sess, nil
}

func (s *Store) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			n++
		}
	}
	return n, nil
}

// SessionCount reports the number of live session rows.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// AssessmentRepository

func (s *Store) CreateAssessment(_ context.Context, a domain.Assessment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	a.Status = domain.StatusQueued
	a.Progress = 0
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	a.Devices = append([]risk.Device(nil), a.Devices...)
	s.assessments[a.ID] = a
	s.jobs = append(s.jobs, &job{id: s.id(), assessmentID: a.ID, status: domain.StatusQueued})
	return a.ID, nil
}

func (s *Store) Assessment(_ context.Context, id int64) (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[id]
	if !ok {
		return domain.Assessment{}, domain.ErrNotFound
	}
	a.Devices = append([]risk.Device(nil), a.Devices...)
	return a, nil
}

func (s *Store) ReplaceDevices(_ context.Context, assessmentID int64, devices []risk.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[assessmentID]
	if !ok {
		return domain.ErrNotFound
	}
	if a.Status != domain.StatusQueued {
		return domain.ErrNotEditable
	}
	a.Devices = append([]risk.Device(nil), devices...)
	s.assessments[assessmentID] = a
	return nil
}

// ReportRepository

func (s *Store) SaveReport(_ context.Context, r domain.AssessmentReport) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[r.AssessmentID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	r.ID = s.id()
	s.reports[r.ID] = r
	a.ReportID = &r.ID
	s.assessments[a.ID] = a
	return r.ID, nil
}

func (s *Store) Report(_ context.Context, id int64) (domain.AssessmentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	if !ok {
		return domain.AssessmentReport{}, domain.ErrNotFound
	}
	return r, nil
}

func (s *Store) ListReports(_ context.Context, limit int) ([]domain.AssessmentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AssessmentReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// JobRepository

func (s *Store) setStatus(assessmentID int64, status string) {
	a := s.assessments[assessmentID]
	a.Status = status
	if status == domain.StatusCompleted {
		a.Progress = 1
	}
	s.assessments[assessmentID] = a
}

func (s *Store) ClaimNext(_ context.Context) (ports.ReportJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.status == domain.StatusQueued {
			j.status = domain.StatusRunning
			j.attempts++
			s.setStatus(j.assessmentID, domain.StatusRunning)
			return ports.ReportJob{ID: j.id, AssessmentID: j.assessmentID}, true, nil
		}
	}
	return ports.ReportJob{}, false, nil
}

func (s *Store) UpdateProgress(_ context.Context, assessmentID int64, progress float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assessments[assessmentID]
	if !ok {
		return domain.ErrNotFound
	}
	a.Progress = min(max(progress, 0), 1)
	s.assessments[assessmentID] = a
	return nil
}

func (s *Store) finish(jobID int64, status, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.id == jobID {
			j.status = status
			j.reason = reason
			s.setStatus(j.assessmentID, status)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) MarkCompleted(_ context.Context, jobID int64) error {
	return s.finish(jobID, domain.StatusCompleted, "")
}

func (s *Store) MarkFailed(_ context.Context, jobID int64, reason string) error {
	return s.finish(jobID, domain.StatusFailed, reason)
}

func (s *Store) Requeue(_ context.Context, jobID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.id == jobID && j.status == domain.StatusRunning {
			j.status = domain.StatusQueued
			a := s.assessments[j.assessmentID]
			a.Status = domain.StatusQueued
			a.Progress = 0
			s.assessments[j.assessmentID] = a
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) StartJobForAssessment(_ context.Context, assessmentID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.assessmentID == assessmentID && j.status == domain.StatusQueued {
			j.status = domain.StatusRunning
			j.attempts++
			s.setStatus(assessmentID, domain.StatusRunning)
			return j.id, nil
		}
	}
	return 0, domain.ErrNotFound
}
