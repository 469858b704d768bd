package checklist

// Rows builds the editor representation of text: one row per parsed item and
// a single empty placeholder row at the end.
func Rows(text string) []Row {
	items := Parse(text)
	rows := make([]Row, 0, len(items)+1)
	for _, item := range items {
		rows = append(rows, Row{Checked: item.Checked, Label: item.Label})
	}
	return append(rows, Row{Placeholder: true})
}

// Flatten turns editor rows back into text. The placeholder and any other
// row without a label are dropped.
func Flatten(rows []Row, asChecklist bool) string {
	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, Item{Checked: row.Checked, Label: row.Label})
	}
	return Serialize(items, asChecklist)
}

// SwitchMode converts text between plain and checklist form. Switching to a
// checklist prefixes every non-blank line with a marker; switching back keeps
// only the labels.
func SwitchMode(text string, toChecklist bool) string {
	return Flatten(Rows(text), toChecklist)
}
