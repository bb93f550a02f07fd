package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/edurank-nepal/api/internal/config"
	commonhttp "github.com/edurank-nepal/api/internal/interfaces/http/common"
	publichttp "github.com/edurank-nepal/api/internal/interfaces/http/public"
)

var errInvalidToken = errors.New("invalid access token")

type authClaims struct {
	jwt.RegisteredClaims
	Username string `json:"preferred_username,omitempty"`
	Role     string `json:"role"`
}

// Authenticator checks the configured admin credential and issues HS256 tokens.
type Authenticator struct {
	username string
	hash     []byte
	secret   []byte
	issuer   string
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthenticator(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{
		username: cfg.AdminUsername,
		hash:     cfg.AdminPasswordHash,
		secret:   cfg.Secret,
		issuer:   cfg.Issuer,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

// Login returns a signed token for the admin user.
func (a *Authenticator) Login(_ context.Context, username, password string) (string, time.Time, error) {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(a.username)) == 1
	err := bcrypt.CompareHashAndPassword(a.hash, []byte(password))
	if !userOK || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return "", time.Time{}, publichttp.ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, fmt.Errorf("compare password: %w", err)
	}

	now := a.now().UTC()
	expiresAt := now.Add(a.ttl)
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   a.username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Username: a.username,
		Role:     commonhttp.RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies signature, issuer, expiry and subject.
func (a *Authenticator) Parse(tokenString string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return a.secret, nil
	},
		jwt.WithIssuer(a.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30*time.Second),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	if claims.Subject == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}

// requireRole verifies the bearer token and puts the principal in the request context.
func (s *Server) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, "expected a Bearer token")
				return
			}

			claims, err := s.auth.Parse(strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
			if err != nil {
				commonhttp.WriteError(s.logger, w, http.StatusUnauthorized, err.Error())
				return
			}
			principal := commonhttp.Principal{
				Subject:  claims.Subject,
				Username: claims.Username,
				Role:     claims.Role,
			}
			if !principal.HasRole(role) {
				commonhttp.WriteError(s.logger, w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r.WithContext(commonhttp.WithPrincipal(r.Context(), principal)))
		})
	}
}
