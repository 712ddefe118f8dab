// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the admin gate: one shared password exchanged for
one static bearer token.

# Password

The password comes from configuration (ADMIN_PASSWORD) and is compared in
constant time:

	if err := auth.CheckPassword(req.Password, cfg.AdminPassword); err != nil {
		// 401
	}

# Token

The token is ADMIN_TOKEN when set, otherwise an HMAC-SHA256 of the password,
URL-safe base64 without padding:

	token := auth.AdminToken(cfg.AdminToken, cfg.AdminPassword)

It never expires and is the same for every admin. Restarting with a new
password changes a derived token.

# Bearer Check

Every admin route requires the Authorization header to be exactly
"Bearer <token>":

	if err := auth.ValidateBearer(r.Header.Get("Authorization"), token); err != nil {
		// 401
	}

# Errors

	ErrInvalidPassword  // login failed
	ErrUnauthorized     // bearer header missing or wrong
*/
package auth
