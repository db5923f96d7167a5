package devserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey struct{}

type principal struct {
	userID  int64
	tokenID string
}

func principalFrom(ctx context.Context) principal {
	p, _ := ctx.Value(ctxKey{}).(principal)
	return p
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  userRecord `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req := registration{}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		writeError(w, http.StatusUnprocessableEntity, "name, email and a password of at least 6 characters are required")
		return
	}
	if req.UserType == "" {
		req.UserType = "client"
	}
	if req.UserType != "client" && req.UserType != "worker" {
		writeError(w, http.StatusUnprocessableEntity, "user_type must be client or worker")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "hash password")
		return
	}

	s.mu.Lock()
	if _, taken := s.emails[req.Email]; taken {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	s.nextUserID++
	user := &userRecord{
		ID:           s.nextUserID,
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		UserType:     req.UserType,
		Available:    req.UserType == "worker",
		PasswordHash: hash,
	}
	s.users[user.ID] = user
	s.emails[user.Email] = user.ID
	public := user.public()
	s.mu.Unlock()

	token, err := s.issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "issue token")
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: public})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req := credentials{}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	s.mu.Lock()
	var user *userRecord
	if id, ok := s.emails[strings.ToLower(strings.TrimSpace(req.Email))]; ok {
		user = s.users[id]
	}
	var public userRecord
	var hash []byte
	if user != nil {
		public, hash = user.public(), user.PasswordHash
	}
	s.mu.Unlock()

	if user == nil || bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := s.issue(public.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "issue token")
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: public})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r.Context())
	s.mu.Lock()
	s.revoked[p.tokenID] = struct{}{}
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	user, ok := s.user(principalFrom(r.Context()).userID)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Revoke invalidates token server side. The next request carrying it gets 401.
func (s *Server) Revoke(token string) {
	claims, err := s.parse(token)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.revoked[claims.ID] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := s.parse(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid subject")
			return
		}
		s.mu.Lock()
		_, revoked := s.revoked[claims.ID]
		_, exists := s.users[userID]
		s.mu.Unlock()
		if revoked || !exists {
			writeError(w, http.StatusUnauthorized, "token revoked")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey{}, principal{userID: userID, tokenID: claims.ID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) issue(userID int64) (string, error) {
	now := s.clock.Now()
	claims := jwt.RegisteredClaims{
		ID:        s.ids.New(),
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) parse(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims.ID == "" {
		return nil, errors.New("token has no id")
	}
	return claims, nil
}

func (s *Server) user(id int64) (userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return userRecord{}, false
	}
	return u.public(), true
}
