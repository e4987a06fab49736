// Package enrichment derives the clinical detail shown on product pages and in exported leaflets.
//
// The data is computed from the product's category, type and strength on every call and is never
// stored back on the product. Resolve is total: categories without specific content fall back to
// the baseline record.
package enrichment

import (
	"fmt"
	"strings"

	"medivance-backend/models"
)

type Pharmacokinetics struct {
	Absorption   string `json:"absorption"`
	Distribution string `json:"distribution"`
	Metabolism   string `json:"metabolism"`
	Elimination  string `json:"elimination"`
}

// SideEffects groups adverse effects by likelihood tier.
type SideEffects struct {
	Common   []string `json:"common"`
	Uncommon []string `json:"uncommon"`
	Rare     []string `json:"rare"`
}

// Enrichment is the derived clinical record for one product.
type Enrichment struct {
	Composition       string           `json:"composition"`
	Mechanism         string           `json:"mechanism"`
	Pharmacokinetics  Pharmacokinetics `json:"pharmacokinetics"`
	Contraindications []string         `json:"contraindications"`
	Warnings          []string         `json:"warnings"`
	SideEffects       SideEffects      `json:"sideEffects"`
	DrugInteractions  []string         `json:"drugInteractions"`
	Storage           string           `json:"storage"`
	ShelfLife         string           `json:"shelfLife"`
}

var (
	baselineMechanism = "Acts by inhibiting specific pathways in the body to provide therapeutic effect."

	baselinePharmacokinetics = Pharmacokinetics{
		Absorption:   "Well absorbed from the gastrointestinal tract",
		Distribution: "Widely distributed throughout body tissues",
		Metabolism:   "Metabolized in the liver",
		Elimination:  "Eliminated primarily through kidneys",
	}

	baselineContraindications = []string{
		"Known hypersensitivity to the active ingredient",
		"Severe liver impairment",
		"Pregnancy and lactation (unless specifically indicated)",
	}

	baselineWarnings = []string{
		"Use with caution in elderly patients",
		"Monitor for adverse reactions during treatment",
		"Discontinue if severe side effects occur",
	}

	baselineSideEffects = SideEffects{
		Common:   []string{"Nausea", "Headache", "Dizziness"},
		Uncommon: []string{"Skin rash", "Abdominal pain", "Fatigue"},
		Rare:     []string{"Severe allergic reactions", "Liver dysfunction"},
	}

	baselineInteractions = []string{
		"May interact with anticoagulants",
		"Caution with other medications metabolized by liver",
		"Alcohol may increase risk of side effects",
	}

	baselineStorage   = "Store in a cool, dry place below 25°C. Protect from light and moisture."
	baselineShelfLife = "36 months from date of manufacture"
)

// override holds the category-specific parts. Warnings are appended to the baseline list,
// side effects replace the baseline tiers, contraindications replace the baseline when set.
type override struct {
	mechanism         string
	warnings          []string
	sideEffects       SideEffects
	contraindications []string
}

var overrides = map[string]override{
	models.CategoryAntibiotics: {
		mechanism: "Inhibits bacterial cell wall synthesis or protein synthesis, leading to bacterial death.",
		warnings: []string{
			"Complete the full course of treatment",
			"Do not use for viral infections",
			"May cause antibiotic resistance if misused",
		},
		sideEffects: SideEffects{
			Common:   []string{"Nausea", "Diarrhea", "Stomach upset"},
			Uncommon: []string{"Yeast infections", "Headache", "Dizziness"},
			Rare:     []string{"C. difficile colitis", "Severe allergic reactions"},
		},
	},
	models.CategoryAnalgesics: {
		mechanism: "Reduces pain and inflammation by inhibiting cyclooxygenase enzymes and prostaglandin synthesis.",
		warnings: []string{
			"Do not exceed recommended dose",
			"Risk of gastrointestinal bleeding",
			"Monitor blood pressure in hypertensive patients",
		},
		sideEffects: SideEffects{
			Common:   []string{"Stomach upset", "Nausea", "Heartburn"},
			Uncommon: []string{"Headache", "Dizziness", "Drowsiness"},
			Rare:     []string{"GI bleeding", "Kidney problems", "Liver damage"},
		},
	},
	models.CategoryCardiovascular: {
		mechanism: "Modulates cardiovascular function through various pathways including calcium channels, ACE inhibition, or cholesterol synthesis.",
		warnings: []string{
			"Regular monitoring of blood pressure/cholesterol required",
			"Do not stop suddenly without consulting physician",
			"May cause electrolyte imbalances",
		},
		sideEffects: SideEffects{
			Common:   []string{"Fatigue", "Dizziness", "Muscle pain"},
			Uncommon: []string{"Dry cough", "Swelling", "Palpitations"},
			Rare:     []string{"Liver dysfunction", "Severe muscle breakdown"},
		},
	},
	models.CategorySupplements: {
		mechanism: "Provides essential nutrients to support normal physiological functions and maintain optimal health.",
		warnings: []string{
			"Dietary supplements are not intended to diagnose, treat, cure, or prevent disease",
			"Consult healthcare provider before use if pregnant or nursing",
			"Keep out of reach of children",
		},
		sideEffects: SideEffects{
			Common:   []string{"Mild stomach upset", "Nausea if taken on empty stomach"},
			Uncommon: []string{"Allergic reactions in sensitive individuals"},
			Rare:     []string{"Overdose symptoms with excessive intake"},
		},
		contraindications: []string{
			"Known hypersensitivity to any ingredient",
			"Certain medical conditions may require dose adjustment",
		},
	},
}

// Resolve returns the enrichment record for p. Every slice in the result is freshly allocated.
func Resolve(p models.Product) Enrichment {
	e := Enrichment{
		Composition:       Composition(p.Type, p.Strength),
		Mechanism:         baselineMechanism,
		Pharmacokinetics:  baselinePharmacokinetics,
		Contraindications: clone(baselineContraindications),
		Warnings:          clone(baselineWarnings),
		SideEffects:       baselineSideEffects.clone(),
		DrugInteractions:  clone(baselineInteractions),
		Storage:           baselineStorage,
		ShelfLife:         baselineShelfLife,
	}

	o, ok := overrides[p.Category]
	if !ok {
		return e
	}
	e.Mechanism = o.mechanism
	e.Warnings = append(e.Warnings, o.warnings...)
	e.SideEffects = o.sideEffects.clone()
	if o.contraindications != nil {
		e.Contraindications = clone(o.contraindications)
	}
	return e
}

// BaselineWarnings returns a copy of the warnings every product carries.
func BaselineWarnings() []string {
	return clone(baselineWarnings)
}

// Composition renders the composition line, e.g. "Each tablets contains 500mg of active ingredient".
func Composition(dosageForm, strength string) string {
	return fmt.Sprintf("Each %s contains %s of active ingredient", strings.ToLower(dosageForm), strength)
}

func (s SideEffects) clone() SideEffects {
	return SideEffects{
		Common:   clone(s.Common),
		Uncommon: clone(s.Uncommon),
		Rare:     clone(s.Rare),
	}
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
