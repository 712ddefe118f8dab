// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestDeriveAdminToken(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"standard", "harvard-hack-2026"},
		{"empty password", ""},
		{"unicode", "пароль🎃"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := DeriveAdminToken(tt.password)

			// SHA256 = 32 bytes, base64 without padding = 43 chars
			if len(token) != 43 {
				t.Errorf("DeriveAdminToken() length = %d, want 43", len(token))
			}
			if strings.ContainsAny(token, "+/=") {
				t.Errorf("DeriveAdminToken() contains non-URL-safe chars: %s", token)
			}
			// Deterministic
			if again := DeriveAdminToken(tt.password); again != token {
				t.Errorf("DeriveAdminToken() not deterministic: %s vs %s", token, again)
			}
		})
	}

	if DeriveAdminToken("a") == DeriveAdminToken("b") {
		t.Error("different passwords produced the same token")
	}
	if DeriveAdminToken("secret") == "secret" {
		t.Error("token must not equal the password")
	}
}

func TestAdminToken(t *testing.T) {
	if got := AdminToken("configured", "pw"); got != "configured" {
		t.Errorf("AdminToken() = %q, want configured token", got)
	}
	if got := AdminToken("", "pw"); got != DeriveAdminToken("pw") {
		t.Errorf("AdminToken() = %q, want derived token", got)
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name    string
		given   string
		want    string
		wantErr bool
	}{
		{"match", "s3cret", "s3cret", false},
		{"mismatch", "guess", "s3cret", true},
		{"case sensitive", "S3CRET", "s3cret", true},
		{"prefix", "s3cre", "s3cret", true},
		{"empty given", "", "s3cret", true},
		{"nothing configured", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.given, tt.want)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && err != ErrInvalidPassword {
				t.Errorf("CheckPassword() error = %v, want ErrInvalidPassword", err)
			}
		})
	}
}

func TestValidateBearer(t *testing.T) {
	const token = "admin-token"

	tests := []struct {
		name    string
		header  string
		wantErr bool
	}{
		{"exact", "Bearer admin-token", false},
		{"missing", "", true},
		{"no scheme", "admin-token", true},
		{"lowercase scheme", "bearer admin-token", true},
		{"extra space", "Bearer  admin-token", true},
		{"trailing space", "Bearer admin-token ", true},
		{"wrong token", "Bearer admin-tokem", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBearer(tt.header, token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBearer(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
		})
	}

	if err := ValidateBearer("Bearer ", ""); err == nil {
		t.Error("empty token must never validate")
	}
}
