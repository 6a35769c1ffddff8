package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

const (
	HeaderAdminUser = "x-admin-user"
	HeaderAdminPass = "x-admin-pass"
)

// AdminAuth gates the settings update behind a static shared-secret header
// pair. Mismatch answers 403 before any handler logic runs, so no mutation
// is ever attempted with bad credentials.
type AdminAuth struct {
	user string
	pass string
}

func NewAdminAuth(user, pass string) *AdminAuth {
	return &AdminAuth{user: user, pass: pass}
}

func (a *AdminAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Header.Get(HeaderAdminUser)
		pass := r.Header.Get(HeaderAdminPass)

		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.user)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.pass)) == 1

		if a.user == "" || a.pass == "" || !userOK || !passOK {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid admin credentials"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
