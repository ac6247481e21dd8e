package mock

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrportal/client"
	"hrportal/internal/auth"
	"hrportal/internal/platform/config"
)

// Server serves the full operation table against the seeded dataset.
// Routes are registered from the same declarative table the SDK calls
// through, so the two cannot drift apart.
type Server struct {
	cfg    config.Config
	data   *Dataset
	log    *slog.Logger
	router chi.Router
	now    func() time.Time
}

func NewServer(cfg config.Config, data *Dataset, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, data: data, log: log, now: time.Now}

	router := chi.NewRouter()
	router.Use(requestIDMiddleware)
	if cfg.LogRequests {
		router.Use(loggerMiddleware(log))
	}
	router.Use(authMiddleware(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Post("/Auth/Login", s.handleLogin)

	handlers := s.handlers()
	for _, ep := range client.Endpoints() {
		handler, ok := handlers[ep.Name]
		if !ok {
			handler = s.genericHandler(ep)
		}
		router.Method(ep.Method, ep.RoutePattern(), handler)
	}

	s.router = router
	return s
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) Dataset() *Dataset { return s.data }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed login payload")
		return
	}
	account, ok := s.data.AccountByEmail(req.Email)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown account")
		return
	}
	if err := auth.CheckPassword(account.PasswordHash, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	claims := auth.Claims{AccountID: account.AccountID, Role: account.Role}
	if account.EmployeeID != nil {
		claims.EmployeeID = *account.EmployeeID
	}
	token, err := auth.GenerateToken(s.cfg.JWTSecret, claims, s.cfg.TokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}
	writeJSON(w, http.StatusOK, client.LoginResult{Token: token, Role: account.Role, AccountID: account.AccountID})
}

// genericHandler covers table rows without a dedicated behavior: reads get
// a receipt document, writes acknowledge with 204.
func (s *Server) genericHandler(ep client.Endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ep.Method == http.MethodGet {
			data, err := receiptPDF(ep.Name, r.URL.RawQuery)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "render failed")
				return
			}
			writeFile(w, ep.Name+".pdf", "application/pdf", data)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
