package service

import (
	"testing"
	"time"

	"github.com/quizforge/quizforge-backend/internal/config"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		JWTSecret: secret,
		JWTExpiry: time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService(testConfig("test-secret"))

	signed, err := tokens.Generate(42, "Ada")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	claims, err := tokens.Validate(signed)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Name != "Ada" {
		t.Errorf("Name = %q, want Ada", claims.Name)
	}
}

func TestValidateRejects(t *testing.T) {
	tokens := NewTokenService(testConfig("test-secret"))

	t.Run("Garbage", func(t *testing.T) {
		if _, err := tokens.Validate("not-a-token"); err == nil {
			t.Error("garbage token accepted")
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenService(testConfig("different-secret"))
		signed, err := other.Generate(1, "")
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if _, err := tokens.Validate(signed); err == nil {
			t.Error("token signed with another secret accepted")
		}
	})
}
