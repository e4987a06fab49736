package export

import (
	"strings"
	"time"

	"medivance-backend/enrichment"
	"medivance-backend/models"
)

var rule = strings.Repeat("═", 63)

// Leaflet renders the plain-text patient information leaflet for p. The only part that depends
// on now is the closing "last updated" line.
func Leaflet(p models.Product, b Branding, now time.Time) string {
	e := enrichment.Resolve(p)
	w := &leafletWriter{}

	w.line("PATIENT INFORMATION LEAFLET")
	w.line(p.Name)
	w.line(b.CompanyName)
	w.blank()
	w.line(rule)

	w.section("PRODUCT INFORMATION")
	w.line("Product Name: " + p.Name)
	w.line("Active Ingredient: " + activeIngredient(p.Name))
	w.line("Strength: " + p.Strength)
	w.line("Dosage Form: " + p.Type)
	w.line("Packaging: " + p.Packaging)
	w.line("Category: " + categoryLabel(p.Category))

	w.section("COMPOSITION")
	w.line(e.Composition)

	w.section("THERAPEUTIC INDICATIONS")
	w.line(p.Indication)

	w.section("MECHANISM OF ACTION")
	w.line(e.Mechanism)

	w.section("DOSAGE AND ADMINISTRATION")
	for _, l := range dosageLines(p.Dosage) {
		w.line(l)
	}

	w.section("CONTRAINDICATIONS")
	w.bullets(e.Contraindications)

	w.section("WARNINGS AND PRECAUTIONS")
	w.bullets(e.Warnings)

	w.section("SIDE EFFECTS")
	w.line(commonTier)
	w.bullets(e.SideEffects.Common)
	w.blank()
	w.line(uncommonTier)
	w.bullets(e.SideEffects.Uncommon)
	w.blank()
	w.line(rareTier)
	w.bullets(e.SideEffects.Rare)

	w.section("DRUG INTERACTIONS")
	w.bullets(e.DrugInteractions)

	w.section("PHARMACOKINETICS")
	w.line("Absorption: " + e.Pharmacokinetics.Absorption)
	w.line("Distribution: " + e.Pharmacokinetics.Distribution)
	w.line("Metabolism: " + e.Pharmacokinetics.Metabolism)
	w.line("Elimination: " + e.Pharmacokinetics.Elimination)

	w.section("STORAGE CONDITIONS")
	w.line(e.Storage)
	w.line("Shelf Life: " + e.ShelfLife)

	w.section("IMPORTANT SAFETY INFORMATION")
	w.line("• If you experience any severe or persistent side effects, stop taking this")
	w.line("  medication and seek immediate medical attention.")
	w.line("• Always inform your healthcare provider about all medications you are taking.")
	w.line("• Do not share this medication with others.")
	w.line("• Keep out of reach of children.")

	w.section("DISPOSAL")
	w.line("Dispose of unused medication properly. Do not flush down toilet.")
	w.line("Return to pharmacy or follow local disposal guidelines.")

	w.section("MANUFACTURER INFORMATION")
	w.line(b.CompanyName)
	w.line("License Number: " + licenseNumber(p.ID))
	w.line("Manufacturing Date: See packaging for batch-specific information")

	w.section("CONTACT INFORMATION")
	w.line("Medical Information Hotline: " + b.Hotline)
	w.line("Email: " + b.Email)
	w.line("Website: " + b.Website)

	w.blank()
	w.line(rule)
	w.line("This leaflet was last updated: " + FormatDate(now))
	w.line(disclaimer)
	w.line(rule)

	return w.String()
}

type leafletWriter struct {
	strings.Builder
}

func (w *leafletWriter) line(s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}

func (w *leafletWriter) blank() {
	w.WriteByte('\n')
}

// section writes a header followed by its rule, separated from the previous block by a blank line.
func (w *leafletWriter) section(title string) {
	w.blank()
	w.line(title)
	w.line(rule)
}

func (w *leafletWriter) bullets(items []string) {
	for _, item := range items {
		w.line("• " + item)
	}
}
