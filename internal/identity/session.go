package identity

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionCookieName = "session_token"

// SessionProvider verifies the hosted provider's HS256 session tokens.
// Tokens arrive via the session cookie or an Authorization bearer header
// and carry the subject id in "sub" and the primary email in "email".
type SessionProvider struct {
	secret string
}

func NewSessionProvider(secret string) *SessionProvider {
	return &SessionProvider{secret: secret}
}

func (p *SessionProvider) Caller(r *http.Request) (*Identity, error) {
	tokenString := tokenFromRequest(r)
	if tokenString == "" {
		return nil, nil
	}

	claims, err := p.verify(tokenString)
	if err != nil {
		// Expired or tampered tokens degrade to anonymous rather than
		// failing the request outright.
		slog.Debug("session token rejected", "error", err)
		return nil, nil
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, nil
	}
	email, _ := claims["email"].(string)

	return &Identity{ExternalID: sub, Email: email}, nil
}

func (p *SessionProvider) verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// IssueToken signs a session token for the given identity. The hosted
// provider issues these in production; this exists for local development
// and tests.
func (p *SessionProvider) IssueToken(id Identity, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   id.ExternalID,
		"email": id.Email,
		"exp":   time.Now().Add(expiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.secret))
}

func tokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
