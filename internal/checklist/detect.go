package checklist

import "strings"

// IsChecklist reports whether the first line of text starts with one of the
// checklist markers. Empty text counts as "no checklist".
func IsChecklist(text string) bool {
	return strings.HasPrefix(text, MarkerChecked) ||
		strings.HasPrefix(text, MarkerCheckedUpper) ||
		strings.HasPrefix(text, MarkerUnchecked)
}

// LooksLikeChecklist is the looser test used to pick the initial editor mode:
// a marker may also start any later line. It never gates progress updates.
func LooksLikeChecklist(text string) bool {
	if text == "" {
		return false
	}
	return IsChecklist(text) ||
		strings.Contains(text, "\n"+MarkerChecked) ||
		strings.Contains(text, MarkerCheckedUpper) ||
		strings.Contains(text, "\n"+MarkerUnchecked)
}
