package devserver

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
)

type paymentRequest struct {
	JobID  int64   `json:"job_id"`
	Amount float64 `json:"amount"`
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	req := paymentRequest{}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}
	caller := principalFrom(r.Context()).userID

	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[req.JobID]
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if job.ClientID != caller {
		writeError(w, http.StatusForbidden, "only the job owner can pay")
		return
	}
	id := s.ids.New()
	payment := &paymentRecord{
		ID:        id,
		JobID:     job.ID,
		PayerID:   caller,
		PayeeID:   job.WorkerID,
		Amount:    req.Amount,
		Currency:  "NGN",
		Status:    "pending",
		Reference: reference(id),
		CreatedAt: s.clock.Now(),
	}
	s.payments[id] = payment
	writeJSON(w, http.StatusCreated, *payment)
}

func (s *Server) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	caller := principalFrom(r.Context()).userID
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[mux.Vars(r)["id"]]
	if !ok {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	if payment.PayerID != caller {
		writeError(w, http.StatusForbidden, "not your payment")
		return
	}
	if payment.Status != "pending" {
		writeError(w, http.StatusConflict, "payment already "+payment.Status)
		return
	}
	payment.Status = "completed"
	if payment.PayeeID != 0 {
		s.notifyLocked(payment.PayeeID, "payment", "Payment received", fmt.Sprintf("%.2f %s for job #%d", payment.Amount, payment.Currency, payment.JobID))
	}
	writeJSON(w, http.StatusOK, *payment)
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	caller := principalFrom(r.Context()).userID
	s.mu.Lock()
	out := []paymentRecord{}
	for _, p := range s.payments {
		if p.PayerID == caller || p.PayeeID == caller {
			out = append(out, *p)
		}
	}
	s.mu.Unlock()
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	writeJSON(w, http.StatusOK, out)
}

func reference(id string) string {
	compact := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(compact) > 12 {
		compact = compact[:12]
	}
	return "SBL-" + compact
}
