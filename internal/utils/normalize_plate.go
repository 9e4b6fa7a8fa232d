package utils

import "strings"

// NormalizePlate trims and uppercases a registration plate. Internal
// whitespace is kept: East African plates are written with a space
// (e.g. "KBX 123A") and collapsing it would change the plate.
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
