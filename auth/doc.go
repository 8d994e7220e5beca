// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key and hashing utilities.

# Admin Keys

Creating a question returns an admin key for it. The key is required to add
choices:

	adminKey := auth.GenerateAdminKey(questionID, salt)
	err := auth.ValidateAdminKey(questionID, adminKey, salt)

Keys are HMAC-SHA256, URL-safe base64 without padding. They are derived from
the question ID and salt, so nothing is stored in the database.

# IP Hashing

Vote logs carry a hashed client address instead of the address itself:

	hash := auth.HashIP(ipAddress, salt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
