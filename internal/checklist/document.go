package checklist

import "strings"

// Document is an ordered checklist. It is a value: every edit returns a new
// Document and leaves the receiver untouched.
type Document struct {
	Items []Item
}

// Total is the number of items.
func (d Document) Total() int {
	return len(d.Items)
}

// CheckedCount is the number of checked items.
func (d Document) CheckedCount() int {
	n := 0
	for _, item := range d.Items {
		if item.Checked {
			n++
		}
	}
	return n
}

// Text serializes the document with markers.
func (d Document) Text() string {
	return Serialize(d.Items, true)
}

// SetChecked returns a copy with item i set to checked.
// ok is false when i is out of range.
func (d Document) SetChecked(i int, checked bool) (Document, bool) {
	if i < 0 || i >= len(d.Items) {
		return d, false
	}
	out := d.clone()
	out.Items[i].Checked = checked
	return out, true
}

// Append returns a copy with a new item at the end.
// ok is false when label trims to nothing or contains a line break.
func (d Document) Append(label string, checked bool) (Document, bool) {
	label = strings.TrimSpace(label)
	if label == "" || HasLineBreak(label) {
		return d, false
	}
	out := d.clone()
	out.Items = append(out.Items, Item{Checked: checked, Label: label})
	return out, true
}

// Remove returns a copy without item i.
// ok is false when i is out of range.
func (d Document) Remove(i int) (Document, bool) {
	if i < 0 || i >= len(d.Items) {
		return d, false
	}
	out := Document{Items: make([]Item, 0, len(d.Items)-1)}
	out.Items = append(out.Items, d.Items[:i]...)
	out.Items = append(out.Items, d.Items[i+1:]...)
	return out, true
}

// SetAll returns a copy with every item set to checked.
func (d Document) SetAll(checked bool) Document {
	out := d.clone()
	for i := range out.Items {
		out.Items[i].Checked = checked
	}
	return out
}

func (d Document) clone() Document {
	items := make([]Item, len(d.Items))
	copy(items, d.Items)
	return Document{Items: items}
}
