package templates

import "strings"

// Template pairs a style name with its instruction text.
type Template struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// Catalog is the fixed set of note styles offered to the user. Order
// matters: the first entry doubles as the fallback when an unknown
// style name comes in.
var Catalog = []Template{
	{
		Name:         "Textbook (concise)",
		Instructions: "Write a concise textbook-style note for the topic. Use headings and short bullets.",
	},
	{
		Name:         "5-mark exam answer",
		Instructions: "Write a structured 5-mark exam answer: Intro, Etiology/Classification, Mechanism/Pathology, Clinical features/Uses, Management/Steps, High-yield bullets.",
	},
	{
		Name:         "10-mark exam answer",
		Instructions: "Write a structured 10-mark exam answer: Intro, Classification, Detailed Mechanism/Techniques, Indications, Complications, Comparative notes, Summary.",
	},
	{
		Name:         "iOS Notes bullets (short)",
		Instructions: "Write short, punchy iOS Notes-friendly bullets. Keep nesting to max 2 levels.",
	},
	{
		Name:         "Pharmacology tabular (plain)",
		Instructions: "Produce plain-text drug tables: Name, Class, MOA, Uses with mechanism, PK, Adverse effects, Contraindications, Pearls.",
	},
}

// Suffix is appended to every composed prompt and cannot be removed
// through style selection (the user may still edit the final prompt).
const Suffix = "Use the PDF text below as source; do NOT invent facts."

// Lookup finds a catalog entry by name.
func Lookup(name string) (Template, bool) {
	for _, t := range Catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Compose builds the editable prompt. Non-blank custom text wins over
// any style selection; an unknown style falls back to the first
// catalog entry.
func Compose(style, custom string) string {
	base := strings.TrimSpace(custom)
	if base == "" {
		t, ok := Lookup(style)
		if !ok {
			t = Catalog[0]
		}
		base = t.Instructions
	}
	return base + "\n\n" + Suffix
}
