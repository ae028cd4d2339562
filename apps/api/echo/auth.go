package echoapi

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"

	"github.com/vedsagar/educrm/core"
)

// appJWTConfig is the default JWT auth middleware config; it is completed
// with the signing key in NewServer.
var appJWTConfig = middleware.JWTConfig{
	SigningMethod: middleware.AlgorithmHS256,
	ContextKey:    "adminToken",
	Claims:        new(Claims),
}

// Claims represents the authorization claims transmitted via a JWT. There
// is a single admin account; the claims only carry its username.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
}

// GetAdminClaims returns the Claims for the configured admin account.
func GetAdminClaims(conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   conf.AdminUsername,
			ExpiresAt: now.Add(conf.JwtExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Username: conf.AdminUsername,
	}
}

// checkPassword accepts a bcrypt hash in config; a non-hashed value is
// compared directly so demo setups work without pre-hashing.
func checkPassword(stored, given string) error {
	if strings.HasPrefix(stored, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)); err != nil {
			return errAuthenticationFailed
		}
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) != 1 {
		return errAuthenticationFailed
	}
	return nil
}

func authenticate(username, password string, conf *core.Config) (*Claims, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(conf.AdminUsername)) != 1 {
		// still run the password check so both failures take similar time
		checkPassword(conf.AdminPassword, password) //nolint:errcheck
		return nil, errAuthenticationFailed
	}
	if err := checkPassword(conf.AdminPassword, password); err != nil {
		return nil, err
	}
	return GetAdminClaims(conf), nil
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(appJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString(appJWTConfig.SigningKey)
}
