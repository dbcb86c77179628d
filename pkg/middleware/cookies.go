package middleware

import "net/http"

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session_id"

// SecureCookie returns a properly secured HTTP cookie
func SecureCookie(name, value string, maxAge int, secure, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionCookie returns a session cookie whose max-age matches the session
// TTL, so the browser drops it when the server stops honoring it
func SessionCookie(sessionID string, maxAge int, secure bool) *http.Cookie {
	return SecureCookie(SessionCookieName, sessionID, maxAge, secure, true)
}

// ExpiredCookie returns a cookie that has been expired (for logout)
func ExpiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
