package card

import "strings"

// MaskPan hides all but the last four characters of a PAN. Anything shorter
// than four characters is fully replaced by a fixed four-character mask.
func MaskPan(pan string) string {
	if len(pan) < 4 {
		return "****"
	}
	const visibleDigits = 4
	return strings.Repeat("*", len(pan)-visibleDigits) + pan[len(pan)-visibleDigits:]
}

// MaskCvv hides the whole CVV, keeping its length.
func MaskCvv(cvv string) string {
	if cvv == "" {
		return "***"
	}
	return strings.Repeat("*", len(cvv))
}
