package jwt

import (
	"errors"
	"fmt"
	"time"

	"oatmeal/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

// NewPreviewToken signs a preview session into a compact token. The
// backend bearer token is embedded so the transport can re-present it
// upstream, but only after the signature verifies. Expiry is bound into
// the signature, so a tampered or stretched session fails verification.
func NewPreviewToken(session models.PreviewSession, secret string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["cid"] = session.ContentID
	claims["wpt"] = session.BackendToken
	claims["iat"] = time.Now().Unix()
	claims["exp"] = session.ExpiresAt.Unix()
	claims["jti"] = uuid.NewString()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("lib.jwt.NewPreviewToken: %w", err)
	}

	return tokenString, nil
}

// ParsePreviewToken verifies the signature and expiry and returns the
// embedded session. Expired or tampered tokens return ErrInvalidToken.
func ParsePreviewToken(tokenString, secret string) (models.PreviewSession, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.PreviewSession{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.PreviewSession{}, ErrInvalidTokenClaims
	}

	cid, ok := claims["cid"].(string)
	if !ok {
		return models.PreviewSession{}, ErrInvalidTokenClaims
	}

	wpt, ok := claims["wpt"].(string)
	if !ok {
		return models.PreviewSession{}, ErrInvalidTokenClaims
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return models.PreviewSession{}, ErrInvalidTokenClaims
	}

	return models.PreviewSession{
		ContentID:    cid,
		BackendToken: wpt,
		ExpiresAt:    time.Unix(int64(exp), 0),
	}, nil
}
