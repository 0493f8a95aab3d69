// Package api implements the note REST API using chi.
package api

import (
	"crypto/subtle"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

// tokenQueryParam carries the credential for clients that cannot set headers,
// such as a browser EventSource.
const tokenQueryParam = "access_token"

// Verifier checks a bearer credential.
type Verifier interface {
	Verify(credential string) bool
}

// StaticToken accepts exactly one shared token.
type StaticToken string

// Verify compares in constant time.
func (t StaticToken) Verify(credential string) bool {
	return subtle.ConstantTimeCompare([]byte(credential), []byte(t)) == 1
}

// JWTVerifier accepts HMAC-signed JWTs. Expiry and not-before claims are
// enforced when present.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a verifier for tokens signed with secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token signature and time claims.
func (v *JWTVerifier) Verify(credential string) bool {
	token, err := jwt.Parse(credential, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	return err == nil && token.Valid
}

// AuthMiddleware rejects requests without a credential accepted by v.
// A nil v disables authentication.
// With allowQuery set, the credential may also arrive as ?access_token=.
func AuthMiddleware(v Verifier, allowQuery bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v == nil {
				next.ServeHTTP(w, r)
				return
			}
			given, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok && allowQuery {
				given = r.URL.Query().Get(tokenQueryParam)
				ok = given != ""
			}
			if !ok || !v.Verify(given) {
				writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WriteLimit throttles requests through a shared token bucket. A nil limiter
// lets everything through.
func WriteLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}
			res := l.Reserve()
			if delay := res.Delay(); !res.OK() || delay > 0 {
				res.Cancel()
				retry := int(math.Ceil(delay.Seconds()))
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				writeJSON(w, http.StatusTooManyRequests, errorBody("rate limit exceeded"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
