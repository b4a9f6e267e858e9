package web

import "github.com/sbilibin2017/tweet-board/internal/models"

// SessionStatus is the outcome of resolving the caller's session.
type SessionStatus int

const (
	SessionPending SessionStatus = iota
	SessionAnonymous
	SessionAuthenticated
)

// SessionState is what pages and guards know about the caller.
type SessionState struct {
	Status SessionStatus
	User   *models.SessionUser
}

func (s SessionState) Pending() bool       { return s.Status == SessionPending }
func (s SessionState) Authenticated() bool { return s.Status == SessionAuthenticated }

// GuardKind tells a route what to do with a request.
type GuardKind int

const (
	GuardPass GuardKind = iota
	GuardLoading
	GuardRedirect
)

// GuardDecision is the result of a route guard. To is set for GuardRedirect.
type GuardDecision struct {
	Kind GuardKind
	To   string
}

func pass() GuardDecision              { return GuardDecision{Kind: GuardPass} }
func loading() GuardDecision           { return GuardDecision{Kind: GuardLoading} }
func redirect(to string) GuardDecision { return GuardDecision{Kind: GuardRedirect, To: to} }

// GuardPublicOnly keeps signed-in users away from the login and register pages.
func GuardPublicOnly(state SessionState) GuardDecision {
	switch state.Status {
	case SessionPending:
		return loading()
	case SessionAuthenticated:
		return redirect("/")
	default:
		return pass()
	}
}

// GuardProtected sends anonymous users to the login page.
func GuardProtected(state SessionState) GuardDecision {
	switch state.Status {
	case SessionPending:
		return loading()
	case SessionAnonymous:
		return redirect("/login")
	default:
		return pass()
	}
}
