// Package export renders a product and its enrichment into downloadable documents: a plain-text
// patient leaflet and a paginated A4 product information sheet.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"medivance-backend/models"
)

// Content types of the two artifacts.
const (
	LeafletContentType = "text/plain; charset=utf-8"
	PDFContentType     = "application/pdf"
)

const disclaimer = "Always consult your physician before starting any medication."

// Branding holds the organisation details printed on every document.
type Branding struct {
	CompanyName string
	Masthead    string
	Subtitle    string
	Hotline     string
	Email       string
	Website     string
}

// DefaultBranding returns the Medivance branding used when nothing is configured.
func DefaultBranding() Branding {
	return NewBranding("Medivance Healthcare Ltd.")
}

// NewBranding derives the masthead from companyName and keeps the default contact details.
func NewBranding(companyName string) Branding {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		companyName = "Medivance Healthcare Ltd."
	}
	return Branding{
		CompanyName: companyName,
		Masthead:    strings.ToUpper(strings.TrimSuffix(companyName, " Ltd.")),
		Subtitle:    "Pharmaceutical Product Information",
		Hotline:     "+1-800-MEDINFO (633-4636)",
		Email:       "medinfo@medivance.com",
		Website:     "www.medivancehealthcare.com",
	}
}

var whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)

// LeafletFilename returns "<name with whitespace runs as _>_Leaflet.txt".
func LeafletFilename(productName string) string {
	return whitespaceRun.ReplaceAllString(productName, "_") + "_Leaflet.txt"
}

// PDFFilename returns "<name with whitespace runs as _>_Product_Information.pdf".
func PDFFilename(productName string) string {
	return whitespaceRun.ReplaceAllString(productName, "_") + "_Product_Information.pdf"
}

// ContentDisposition builds an attachment header value for filename.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", filename)
}

// FormatDate renders the "last updated" stamp as M/D/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

// activeIngredient is the first word of the product name.
func activeIngredient(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func categoryLabel(category string) string {
	if category == "" {
		return ""
	}
	r := []rune(category)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func licenseNumber(id int64) string {
	return fmt.Sprintf("ML-%06d", id)
}

// productDetails are the six key/value lines shown in the details box of the PDF.
func productDetails(p models.Product) []string {
	return []string{
		"Active Ingredient: " + activeIngredient(p.Name),
		"Strength: " + p.Strength,
		"Dosage Form: " + p.Type,
		"Packaging: " + p.Packaging,
		"Category: " + categoryLabel(p.Category),
		"License Number: " + licenseNumber(p.ID),
	}
}

func dosageLines(dosage string) []string {
	return []string{
		"Adults: " + dosage,
		"Elderly: Dose adjustment may be required. Consult physician.",
		"Special Populations: Consult healthcare provider for dose modifications.",
	}
}

const (
	commonTier   = "Common (may affect 1 in 10 people):"
	uncommonTier = "Uncommon (may affect 1 in 100 people):"
	rareTier     = "Rare (may affect 1 in 1000 people):"
)
