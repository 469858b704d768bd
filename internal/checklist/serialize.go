package checklist

import "strings"

// Serialize flattens items back into text, one item per line joined with "\n".
// Items whose trimmed label is empty are skipped. A label spanning several
// lines is joined with single spaces so every item stays one line. With
// asChecklist every line gets a "[x] " or "[ ] " prefix; otherwise only the
// labels are written and the checked state is lost.
func Serialize(items []Item, asChecklist bool) string {
	var b strings.Builder
	first := true
	for _, item := range items {
		label := flattenLabel(item.Label)
		if label == "" {
			continue
		}

		if first {
			first = false
		} else {
			b.WriteByte('\n')
		}

		if asChecklist {
			if item.Checked {
				b.WriteString(PrefixChecked)
			} else {
				b.WriteString(PrefixUnchecked)
			}
		}
		b.WriteString(label)
	}
	return b.String()
}

// HasLineBreak reports whether label contains "\n" or "\r". Such a label
// cannot be stored as a single checklist line.
func HasLineBreak(label string) bool {
	return strings.ContainsAny(label, "\r\n")
}

func flattenLabel(label string) string {
	if !HasLineBreak(label) {
		return strings.TrimSpace(label)
	}
	lines := strings.FieldsFunc(label, func(r rune) bool { return r == '\n' || r == '\r' })
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
