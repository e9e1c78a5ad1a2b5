package web

import "net/http"

// Session cookie pair. Both must be present for a request to count as
// "logged in"; mismatched presence is treated the same as absence.
const (
	cookieUsername = "quickjot_user"
	cookieToken    = "quickjot_token"
)

func newSessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionCookies extracts the claimed identity from the request. ok is
// false unless both cookies are present and non-empty.
func sessionCookies(r *http.Request) (username, token string, ok bool) {
	uc, err := r.Cookie(cookieUsername)
	if err != nil || uc.Value == "" {
		return "", "", false
	}
	tc, err := r.Cookie(cookieToken)
	if err != nil || tc.Value == "" {
		return "", "", false
	}
	return uc.Value, tc.Value, true
}

// setSessionCookies installs the verified pair on the client.
func setSessionCookies(w http.ResponseWriter, username, token string) {
	http.SetCookie(w, newSessionCookie(cookieUsername, username, 0))
	http.SetCookie(w, newSessionCookie(cookieToken, token, 0))
}

// clearSessionCookies discards the pair so the client stops presenting a
// session that is known to be dead. Only called on a Rejected outcome or
// an explicit logout, never on a store failure.
func clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, newSessionCookie(cookieUsername, "", -1))
	http.SetCookie(w, newSessionCookie(cookieToken, "", -1))
}
