package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"
)

// RequireAdmin protects mutating routes with HTTP Basic auth. The username
// must match the configured admin identifier and the SHA-256 hex digest of
// the supplied password must match passwordHash. Comparisons are
// constant-time so the check leaks nothing about either credential.
func RequireAdmin(adminUser, passwordHash string) func(http.HandlerFunc) http.HandlerFunc {
	wantHash := []byte(strings.ToLower(passwordHash))

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, password, ok := r.BasicAuth()
			if !ok || !validAdmin(user, password, adminUser, wantHash) {
				w.Header().Set("WWW-Authenticate", `Basic realm="Protected Area"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}
}

func validAdmin(user, password, adminUser string, wantHash []byte) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(adminUser)) == 1

	digest := sha256.Sum256([]byte(password))
	gotHash := []byte(hex.EncodeToString(digest[:]))
	passOK := subtle.ConstantTimeCompare(gotHash, wantHash) == 1

	return userOK && passOK
}
