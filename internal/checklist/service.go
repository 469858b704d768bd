package checklist

// Service exposes the checklist engine. All methods are pure.
type Service interface {
	// IsChecklist reports whether text starts with a checklist marker
	IsChecklist(text string) bool

	// LooksLikeChecklist picks the initial editor mode
	LooksLikeChecklist(text string) bool

	// Parse converts text into a Document
	Parse(text string) Document

	// Serialize flattens items back into text
	Serialize(items []Item, asChecklist bool) string

	// Derive computes progress; false for an empty list
	Derive(items []Item) (Progress, bool)

	// Apply decides which stored progress fields to overwrite
	Apply(current Fields, items []Item) Fields

	// Rows builds the editor rows including the trailing placeholder
	Rows(text string) []Row

	// SwitchMode converts text between plain and checklist form
	SwitchMode(text string, toChecklist bool) string
}

type service struct{}

func New() Service {
	return service{}
}

func (service) IsChecklist(text string) bool        { return IsChecklist(text) }
func (service) LooksLikeChecklist(text string) bool { return LooksLikeChecklist(text) }
func (service) Parse(text string) Document          { return ParseDocument(text) }
func (service) Serialize(items []Item, asChecklist bool) string {
	return Serialize(items, asChecklist)
}
func (service) Derive(items []Item) (Progress, bool)      { return Derive(items) }
func (service) Apply(current Fields, items []Item) Fields { return Apply(current, items) }
func (service) Rows(text string) []Row                    { return Rows(text) }
func (service) SwitchMode(text string, toChecklist bool) string {
	return SwitchMode(text, toChecklist)
}
