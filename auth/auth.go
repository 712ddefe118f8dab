// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")
)

// Domain-separates derived admin tokens from other HMAC uses of the password
const adminTokenContext = "campus-events/admin-token/v1"

// DeriveAdminToken creates the static admin token from the shared password.
// This is deterministic, so every process with the same password hands
// out the same token.
func DeriveAdminToken(password string) string {
	h := hmac.New(sha256.New, []byte(adminTokenContext))
	h.Write([]byte(password))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// AdminToken returns the configured token, or one derived from the
// password when none is configured
func AdminToken(configured, password string) string {
	if configured != "" {
		return configured
	}
	return DeriveAdminToken(password)
}

// CheckPassword compares the submitted password with the configured one
func CheckPassword(given, want string) error {
	if want == "" || !hmac.Equal([]byte(given), []byte(want)) {
		return ErrInvalidPassword
	}
	return nil
}

// ValidateBearer checks an Authorization header value for an exact
// "Bearer <token>" match
func ValidateBearer(header, token string) error {
	if token == "" || !hmac.Equal([]byte(header), []byte("Bearer "+token)) {
		return ErrUnauthorized
	}
	return nil
}
