package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestUserJSONOmitsCredentials(t *testing.T) {
	u := User{
		ID:                uuid.New(),
		Name:              "Mika",
		Email:             "mika@example.com",
		PasswordHash:      "$2a$10$secret",
		Role:              RoleUser,
		VerificationCode:  "verify-code",
		PasswordResetCode: "reset-code",
	}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(raw)
	for _, secret := range []string{"$2a$10$secret", "verify-code", "reset-code", "password_hash"} {
		if strings.Contains(out, secret) {
			t.Fatalf("serialized user leaks %q: %s", secret, out)
		}
	}
	if !strings.Contains(out, "mika@example.com") {
		t.Fatalf("expected public fields present: %s", out)
	}
}
