package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhq/attendance-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Actor returns the subject claim of the verified token, or fallback when
// the request carries no usable identity.
func Actor(r *http.Request, fallback string) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return fallback
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email
	}
	return fallback
}
