package web

import (
	"net/http"

	"github.com/sbilibin2017/tweet-board/internal/client"
	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/middlewares"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

type authForm struct {
	Name   string
	Email  string
	Errors map[string]string
	Error  string
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	state, _ := s.resolveSession(w, r)
	s.render(w, r, http.StatusOK, "home.html", page{Title: "Home", Session: state, Refresh: state.Pending()})
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	state, _ := s.resolveSession(w, r)
	if !s.guard(w, r, GuardPublicOnly(state), state) {
		return
	}
	s.render(w, r, http.StatusOK, "login.html", page{Title: "Log in", Session: state, Data: authForm{}})
}

func (s *Server) loginSubmit(w http.ResponseWriter, r *http.Request) {
	state, _ := s.resolveSession(w, r)
	if !s.guard(w, r, GuardPublicOnly(state), state) {
		return
	}

	email, password := r.PostFormValue("email"), r.PostFormValue("password")
	form := authForm{Email: email}

	if err := validation.ValidateLogin(email, password); err != nil {
		form.Errors = fieldErrors(err)
		s.render(w, r, http.StatusBadRequest, "login.html", page{Title: "Log in", Session: state, Data: form})
		return
	}

	token, _, err := s.api("").Login(r.Context(), email, password)
	if err != nil {
		form.Error = client.MessageOf(err)
		s.render(w, r, statusFor(err), "login.html", page{Title: "Log in", Session: state, Data: form})
		return
	}

	s.setToken(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	state, _ := s.resolveSession(w, r)
	if !s.guard(w, r, GuardPublicOnly(state), state) {
		return
	}
	s.render(w, r, http.StatusOK, "register.html", page{Title: "Register", Session: state, Data: authForm{}})
}

// registerSubmit creates the account and signs the new user in.
func (s *Server) registerSubmit(w http.ResponseWriter, r *http.Request) {
	state, _ := s.resolveSession(w, r)
	if !s.guard(w, r, GuardPublicOnly(state), state) {
		return
	}

	name, email, password := r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("password")
	form := authForm{Name: name, Email: email}

	if err := validation.ValidateRegister(name, email, password); err != nil {
		form.Errors = fieldErrors(err)
		s.render(w, r, http.StatusBadRequest, "register.html", page{Title: "Register", Session: state, Data: form})
		return
	}

	api := s.api("")
	if _, err := api.Register(r.Context(), name, email, password); err != nil {
		form.Error = client.MessageOf(err)
		s.render(w, r, statusFor(err), "register.html", page{Title: "Register", Session: state, Data: form})
		return
	}

	token, _, err := api.Login(r.Context(), email, password)
	if err != nil {
		s.setFlash(w, FlashError, client.MessageOf(err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	s.setToken(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if token := tokenFromRequest(r); token != "" {
		if err := s.api(token).Logout(r.Context()); err != nil && !client.IsUnauthorized(err) {
			logger.Log.Warnw("logout failed",
				"request_id", middlewares.RequestIDFromContext(r.Context()),
				"error", err,
			)
		}
	}
	s.clearToken(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
