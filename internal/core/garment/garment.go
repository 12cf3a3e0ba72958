// Package garment contains the pure business logic for wardrobe garments.
// This is part of the Functional Core - no I/O, only pure functions.
package garment

import (
	"fmt"
	"strconv"
	"strings"
)

// Kinds lists every garment category in the order the wardrobe tabs show them.
var Kinds = []string{
	"t_shirts",
	"tank_tops",
	"hoodies",
	"shirts",
	"trousers",
	"shorts",
	"shoes",
	"hats",
	"jackets",
	"sunglasses",
	"necklaces",
	"piercing",
	"rings",
	"bracelets",
	"bags",
	"gloves",
	"scarfs",
}

// Clean flag values as stored.
const (
	ClearTrue  = "True"
	ClearFalse = "False"
)

// IsKnownKind reports whether kind is one of Kinds.
func IsKnownKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ClearValue converts a bool to the stored clean flag.
func ClearValue(clean bool) string {
	if clean {
		return ClearTrue
	}
	return ClearFalse
}

// IsClean reports whether a stored clean flag means clean.
func IsClean(clear string) bool {
	return clear == ClearTrue
}

// PhotoPath returns the convention photo reference for a garment id.
// The format is photo/<id>.jpg relative to the data directory.
func PhotoPath(id int) string {
	return fmt.Sprintf("photo/%d.jpg", id)
}

// ParsePhotoID extracts the garment id from a photo reference.
// Returns -1 if the reference does not follow the convention.
func ParsePhotoID(ref string) int {
	var id int
	var rest string
	n, _ := fmt.Sscanf(ref, "photo/%d.%s", &id, &rest)
	if n != 2 || rest != "jpg" || id <= 0 {
		return -1
	}
	return id
}

// NormalizeColor trims whitespace, a leading '#', and lowercases a colour code.
func NormalizeColor(c string) string {
	c = strings.TrimSpace(c)
	c = strings.TrimPrefix(c, "#")
	return strings.ToLower(c)
}

// IsValidColor reports whether c is empty, 6 hex digits (RGB) or 8 hex digits (ARGB).
func IsValidColor(c string) bool {
	if c == "" {
		return true
	}
	if len(c) != 6 && len(c) != 8 {
		return false
	}
	for _, r := range c {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// RGB returns the red, green and blue channels of a colour code.
// ARGB codes drop the alpha byte. ok is false for empty or malformed codes.
func RGB(c string) (r, g, b uint8, ok bool) {
	c = NormalizeColor(c)
	if c == "" || !IsValidColor(c) {
		return 0, 0, 0, false
	}
	if len(c) == 8 {
		c = c[2:]
	}
	v, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
