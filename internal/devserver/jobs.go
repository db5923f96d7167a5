package devserver

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

func (s *Server) handleAvailableJobs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.filterJobs(func(j *jobRecord) bool { return j.Status == "available" }))
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status, jobType, location := q.Get("status"), q.Get("job_type"), strings.ToLower(q.Get("location"))
	writeJSON(w, http.StatusOK, s.filterJobs(func(j *jobRecord) bool {
		if status != "" && j.Status != status {
			return false
		}
		if jobType != "" && j.JobType != jobType {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			return false
		}
		return true
	}))
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, job.copy())
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	draft := jobDraft{}
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if msg := draft.problem(); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	caller := principalFrom(r.Context()).userID

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users[caller].UserType != "client" {
		writeError(w, http.StatusForbidden, "only clients can post jobs")
		return
	}
	s.nextJobID++
	job := &jobRecord{ID: s.nextJobID, ClientID: caller, Status: "available", CreatedAt: s.clock.Now()}
	applyDraft(job, draft)
	s.jobs[job.ID] = job
	writeJSON(w, http.StatusCreated, job.copy())
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	draft := jobDraft{}
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if msg := draft.problem(); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	job, status, msg := s.ownedJob(r)
	if job == nil {
		writeError(w, status, msg)
		return
	}
	applyDraft(job, draft)
	writeJSON(w, http.StatusOK, job.copy())
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, status, msg := s.ownedJob(r)
	if job == nil {
		writeError(w, status, msg)
		return
	}
	delete(s.jobs, job.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	caller := principalFrom(r.Context()).userID
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	worker := s.users[caller]
	switch {
	case worker.UserType != "worker":
		writeError(w, http.StatusForbidden, "only workers can apply")
		return
	case job.Status != "available":
		writeError(w, http.StatusConflict, "job is no longer open")
		return
	case job.hasApplicant(caller):
		writeError(w, http.StatusConflict, "already applied")
		return
	}
	job.Applicants = append(job.Applicants, caller)
	s.notifyLocked(job.ClientID, "application", "New applicant", fmt.Sprintf("%s applied to %q", worker.Name, job.Title))
	writeJSON(w, http.StatusOK, job.copy())
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	workerID := pathID(r, "worker")
	s.mu.Lock()
	defer s.mu.Unlock()
	job, status, msg := s.ownedJob(r)
	if job == nil {
		writeError(w, status, msg)
		return
	}
	switch {
	case job.Status != "available":
		writeError(w, http.StatusConflict, "job is no longer open")
		return
	case !job.hasApplicant(workerID):
		writeError(w, http.StatusUnprocessableEntity, "worker has not applied")
		return
	}
	job.WorkerID = workerID
	job.Status = "assigned"
	s.notifyLocked(workerID, "assignment", "Application accepted", fmt.Sprintf("You were hired for %q", job.Title))
	writeJSON(w, http.StatusOK, job.copy())
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	caller := principalFrom(r.Context()).userID
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[pathID(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if caller != job.ClientID && caller != job.WorkerID {
		writeError(w, http.StatusForbidden, "not a party to this job")
		return
	}
	if job.Status != "assigned" && job.Status != "in_progress" {
		writeError(w, http.StatusConflict, "job is not in progress")
		return
	}
	job.Status = "completed"
	other := job.WorkerID
	if caller == job.WorkerID {
		other = job.ClientID
	}
	s.notifyLocked(other, "completion", "Job completed", fmt.Sprintf("%q was marked completed", job.Title))
	writeJSON(w, http.StatusOK, job.copy())
}

// ownedJob must be called with s.mu held.
func (s *Server) ownedJob(r *http.Request) (*jobRecord, int, string) {
	job, ok := s.jobs[pathID(r, "id")]
	if !ok {
		return nil, http.StatusNotFound, "job not found"
	}
	if job.ClientID != principalFrom(r.Context()).userID {
		return nil, http.StatusForbidden, "not your job"
	}
	return job, 0, ""
}

func (s *Server) filterJobs(keep func(*jobRecord) bool) []jobRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []jobRecord{}
	for _, j := range s.jobs {
		if keep(j) {
			out = append(out, j.copy())
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

func applyDraft(job *jobRecord, d jobDraft) {
	job.Title = d.Title
	job.Description = d.Description
	job.JobType = d.JobType
	job.Location = d.Location
	job.Budget = d.Budget
	job.EstimatedHours = d.EstimatedHours
	job.ScheduledDate = d.ScheduledDate
}
