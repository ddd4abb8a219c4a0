// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewMediaID returns a random UUID string for a stored attachment
func NewMediaID() string {
	return uuid.NewString()
}

// NewClientID returns a random id for a live dashboard connection
func NewClientID() string {
	return uuid.NewString()
}

// ContentDigest returns the hex SHA-256 of an attachment's bytes
func ContentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
