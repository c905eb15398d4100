package token

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medimind/backend/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		SigningKey:       "test-signing-key-at-least-32-bytes!",
		Issuer:           "medimind",
		Audience:         "medimind-api",
		AccessTTLMinutes: 15,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := New(testConfig())
	userID := uuid.New()
	sessionID := uuid.New()

	signed, issued, err := m.Issue(userID, &sessionID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if issued.TokenID == "" {
		t.Error("issued claims missing token id")
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %v, want %v", claims.Type, TokenTypeAccess)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported as expired")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	issuer := New(testConfig())

	other := testConfig()
	other.SigningKey = "a-completely-different-signing-key!"
	verifier := New(other)

	signed, _, err := issuer.Issue(uuid.New(), nil)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	issuer := New(testConfig())

	other := testConfig()
	other.Audience = "some-other-service"
	verifier := New(other)

	signed, _, err := issuer.Issue(uuid.New(), nil)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	m := New(testConfig())
	if _, err := m.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}
