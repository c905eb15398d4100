package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medimind/backend/config"
)

// Manager signs and verifies HS256 access tokens.
type Manager struct {
	signingKey []byte
	issuer     string
	audience   string
	accessTTL  time.Duration
}

func New(cfg config.JWTConfig) *Manager {
	return &Manager{
		signingKey: []byte(cfg.SigningKey),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		accessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
	}
}

type jwtClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
	SessionID string `json:"sid,omitempty"`
}

// Issue creates a signed access token for the given user and session.
func (m *Manager) Issue(userID uuid.UUID, sessionID *uuid.UUID) (string, *Claims, error) {
	now := time.Now()
	jti := uuid.New().String()

	c := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			ID:        jti,
		},
		TokenType: string(TokenTypeAccess),
	}
	if sessionID != nil {
		c.SessionID = sessionID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.signingKey)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &Claims{
		Type:      TokenTypeAccess,
		UserID:    userID,
		SessionID: sessionID,
		Issuer:    m.issuer,
		Audience:  m.audience,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.accessTTL),
		TokenID:   jti,
	}, nil
}

// Verify parses and validates a signed token, returning its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	var raw jwtClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.signingKey, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if raw.Subject == "" {
		return nil, ErrMissingUserID
	}
	userID, err := uuid.Parse(raw.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	var sessionID *uuid.UUID
	if raw.SessionID != "" {
		sid, err := uuid.Parse(raw.SessionID)
		if err != nil {
			return nil, fmt.Errorf("%w: bad session id", ErrInvalidToken)
		}
		sessionID = &sid
	}

	claims := &Claims{
		Type:      TokenType(raw.TokenType),
		UserID:    userID,
		SessionID: sessionID,
		Issuer:    raw.Issuer,
		TokenID:   raw.ID,
	}
	if len(raw.Audience) > 0 {
		claims.Audience = raw.Audience[0]
	}
	if raw.IssuedAt != nil {
		claims.IssuedAt = raw.IssuedAt.Time
	}
	if raw.ExpiresAt != nil {
		claims.ExpiresAt = raw.ExpiresAt.Time
	}
	return claims, nil
}
