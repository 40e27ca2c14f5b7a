package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the external identity provider.
// This backend never issues tokens itself; it only checks signatures and
// reads claims off requests.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
}

type verifierService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewVerifier(secretKey string) Service {
	return &verifierService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *verifierService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}
