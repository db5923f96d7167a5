package devserver

import (
	"net/http"
	"sort"
	"strings"
)

type profileUpdate struct {
	Name      *string  `json:"name"`
	Phone     *string  `json:"phone"`
	Location  *string  `json:"location"`
	Bio       *string  `json:"bio"`
	Skills    []string `json:"skills"`
	Available *bool    `json:"available"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.user(principalFrom(r.Context()).userID)
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	req := profileUpdate{}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusUnprocessableEntity, "name cannot be blank")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[principalFrom(r.Context()).userID]
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = append([]string(nil), req.Skills...)
	}
	if req.Available != nil {
		user.Available = *req.Available
	}
	writeJSON(w, http.StatusOK, user.public())
}

func (s *Server) handleListWorkers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skill := strings.ToLower(q.Get("skill"))
	location := strings.ToLower(q.Get("location"))
	availableOnly := q.Get("available") == "true"

	s.mu.Lock()
	out := []userRecord{}
	for _, u := range s.users {
		if u.UserType != "worker" {
			continue
		}
		if availableOnly && !u.Available {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(u.Location), location) {
			continue
		}
		if skill != "" && !hasSkill(u.Skills, skill) {
			continue
		}
		out = append(out, u.public())
	}
	s.mu.Unlock()
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetWorker(w http.ResponseWriter, r *http.Request) {
	user, ok := s.user(pathID(r, "id"))
	if !ok || user.UserType != "worker" {
		writeError(w, http.StatusNotFound, "worker not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func hasSkill(skills []string, want string) bool {
	for _, s := range skills {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
