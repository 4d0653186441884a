package models

import "strings"

type categoryKind uint8

const (
	kindCustom categoryKind = iota
	kindImmediate
	kindLegal
	kindFinancial
	kindProperty
	kindInsurance
	kindBenefits
	kindDigital
	kindHealthcare
	kindPersonal
)

// Category is either one of the canonical checklist categories or a custom
// category carrying its own label. The zero value is an invalid custom
// category with an empty label.
type Category struct {
	kind  categoryKind
	label string
}

var (
	CategoryImmediate  = Category{kind: kindImmediate, label: "immediate"}
	CategoryLegal      = Category{kind: kindLegal, label: "legal"}
	CategoryFinancial  = Category{kind: kindFinancial, label: "financial"}
	CategoryProperty   = Category{kind: kindProperty, label: "property"}
	CategoryInsurance  = Category{kind: kindInsurance, label: "insurance"}
	CategoryBenefits   = Category{kind: kindBenefits, label: "benefits"}
	CategoryDigital    = Category{kind: kindDigital, label: "digital"}
	CategoryHealthcare = Category{kind: kindHealthcare, label: "healthcare"}
	CategoryPersonal   = Category{kind: kindPersonal, label: "personal"}
)

// CanonicalCategories lists the canonical categories in display order.
var CanonicalCategories = []Category{
	CategoryImmediate,
	CategoryLegal,
	CategoryFinancial,
	CategoryProperty,
	CategoryInsurance,
	CategoryBenefits,
	CategoryDigital,
	CategoryHealthcare,
	CategoryPersonal,
}

var displayNames = map[categoryKind]string{
	kindImmediate:  "Immediate Needs",
	kindLegal:      "Legal & Estate",
	kindFinancial:  "Financial",
	kindProperty:   "Property",
	kindInsurance:  "Insurance",
	kindBenefits:   "Benefits",
	kindDigital:    "Digital Life",
	kindHealthcare: "Healthcare",
	kindPersonal:   "Personal",
}

// CustomCategory returns a non-canonical category. A label that matches a
// canonical category yields that canonical category instead.
func CustomCategory(label string) Category {
	return ParseCategory(label)
}

// ParseCategory maps a stored category string back to a Category. Any
// string is accepted: unknown values become custom categories.
func ParseCategory(s string) Category {
	for _, c := range CanonicalCategories {
		if c.label == s {
			return c
		}
	}
	return Category{kind: kindCustom, label: s}
}

func (c Category) IsCustom() bool {
	return c.kind == kindCustom
}

// Valid reports whether c is canonical or a custom category with a
// non-blank label.
func (c Category) Valid() bool {
	return !c.IsCustom() || strings.TrimSpace(c.label) != ""
}

func (c Category) String() string {
	return c.label
}

// Label is the human readable name shown in the checklist.
func (c Category) Label() string {
	if name, ok := displayNames[c.kind]; ok {
		return name
	}
	return c.label
}

// Rank orders canonical categories before custom ones.
func (c Category) Rank() int {
	if c.IsCustom() {
		return len(CanonicalCategories) + 1
	}
	return int(c.kind)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}
