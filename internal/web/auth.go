package web

import (
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/auth"
	"github.com/prajjwalps/laptrack/internal/model"
)

// LoginPage handles GET /login. The page offers the fixed roster, there
// are no credentials to enter.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &struct {
		PageData
		Users []model.User
	}{
		PageData: PageData{Title: "Sign In"},
		Users:    s.Service.Users(),
	})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	userID := r.FormValue("user_id")

	user, err := s.Service.Login(userID)
	if err != nil {
		slog.Warn("login failed", "user_id", userID, "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &struct {
			PageData
			Users []model.User
		}{
			PageData: PageData{Title: "Sign In", Error: "Select a user to sign in."},
			Users:    s.Service.Users(),
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user)
	if err != nil {
		s.Templates.Render(w, "login.html", &struct {
			PageData
			Users []model.User
		}{
			PageData: PageData{Title: "Sign In", Error: "Sign-in failed, try again."},
			Users:    s.Service.Users(),
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	slog.Info("user logged in", "user", user.Name, "role", user.Role)
	http.Redirect(w, r, model.LandingRoute(user.Role), http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.Service.Logout(); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
