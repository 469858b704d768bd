package checklist

import "strings"

// Parse converts text into its ordered checklist items.
//
// Lines are separated by "\n" or "\r\n". A line starting with [x] or [X] is a
// checked item, one starting with [ ] an unchecked item; the marker is cut and
// the rest trimmed. Any other line becomes an unchecked item labelled with the
// whole trimmed line. Lines that trim to nothing are dropped.
func Parse(text string) []Item {
	if text == "" {
		return nil
	}

	lines := splitLines(text)
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		item, ok := parseLine(line)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// ParseDocument is Parse wrapped in a Document.
func ParseDocument(text string) Document {
	return Document{Items: Parse(text)}
}

func parseLine(line string) (Item, bool) {
	var item Item
	switch {
	case strings.HasPrefix(line, MarkerChecked), strings.HasPrefix(line, MarkerCheckedUpper):
		item.Checked = true
		line = line[markerLen:]
	case strings.HasPrefix(line, MarkerUnchecked):
		line = line[markerLen:]
	}

	item.Label = strings.TrimSpace(line)
	if item.Label == "" {
		return Item{}, false
	}
	return item, true
}

// splitLines splits on "\n" and drops the "\r" of a "\r\n" pair.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
