// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxSlugLen is the longest base62 rendering of a uint64.
const maxSlugLen = 11

var ErrInvalidSlug = errors.New("invalid view slug")

// GenerateViewSlug creates a short, deterministic URL slug for a saved view
// Uses HMAC for determinism and base62 encoding for URL-friendliness
func GenerateViewSlug(fragment, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(fragment))
	sum := h.Sum(nil)

	// Take first 8 bytes for a shorter slug
	return base62Encode(sum[:8])
}

// ValidateSlug checks that a slug could have come from GenerateViewSlug
func ValidateSlug(slug string) error {
	if slug == "" || len(slug) > maxSlugLen {
		return ErrInvalidSlug
	}
	for i := 0; i < len(slug); i++ {
		if !strings.ContainsRune(base62Chars, rune(slug[i])) {
			return ErrInvalidSlug
		}
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
// This creates URL-friendly slugs without special characters
func base62Encode(data []byte) string {
	// Convert bytes to a big integer
	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	// Convert to base62
	result := make([]byte, 0, maxSlugLen)
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
