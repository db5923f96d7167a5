package devserver

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
)

// notifyLocked must be called with s.mu held.
func (s *Server) notifyLocked(userID int64, kind, title, message string) {
	if userID == 0 {
		return
	}
	id := s.ids.New()
	s.notifications[id] = &notificationRecord{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Message:   message,
		Kind:      kind,
		CreatedAt: s.clock.Now(),
	}
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	caller := principalFrom(r.Context()).userID
	s.mu.Lock()
	out := []notificationRecord{}
	for _, n := range s.notifications {
		if n.UserID == caller {
			out = append(out, *n)
		}
	}
	s.mu.Unlock()
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReadNotification(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.ownNotification(r)
	if !ok {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	n.Read = true
	writeJSON(w, http.StatusOK, *n)
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.ownNotification(r)
	if !ok {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	delete(s.notifications, n.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ownNotification(r *http.Request) (*notificationRecord, bool) {
	n, ok := s.notifications[mux.Vars(r)["id"]]
	if !ok || n.UserID != principalFrom(r.Context()).userID {
		return nil, false
	}
	return n, true
}
