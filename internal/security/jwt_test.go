package security

import (
	"testing"
	"time"

	"github.com/Vipul160305/placetrack/internal/common"
)

func TestJWTProviderRoundTrip(t *testing.T) {
	provider := NewJWTProvider("secret")
	accountID := common.NewUUID()

	token, expiresAt, err := provider.Generate(accountID, time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatal("expected expiry in the future")
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if claims.AccountID != accountID.String() {
		t.Fatalf("expected account id %s, got %s", accountID, claims.AccountID)
	}
}

func TestJWTProviderParse_Expired(t *testing.T) {
	provider := NewJWTProvider("secret")

	token, _, err := provider.Generate(common.NewUUID(), -time.Minute)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := provider.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestJWTProviderParse_WrongSecret(t *testing.T) {
	provider := NewJWTProvider("secret")
	other := NewJWTProvider("different")

	token, _, err := provider.Generate(common.NewUUID(), time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if hash == "secret1" {
		t.Fatal("expected password to be hashed")
	}
	if !ComparePassword(hash, "secret1") {
		t.Fatal("expected matching password to verify")
	}
	if ComparePassword(hash, "wrong") {
		t.Fatal("expected wrong password to fail")
	}
}
