package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"medivance-backend/enrichment"
	"medivance-backend/models"
)

var augmocil = models.Product{
	ID:          1,
	Name:        "Augmocil 625mg",
	Category:    models.CategoryAntibiotics,
	Type:        models.TypeCapsules,
	Description: "Amoxicillin and clavulanate combination",
	Indication:  "Bacterial infections of the respiratory tract, skin and urinary tract",
	Dosage:      "1 capsule every 12 hours",
	Packaging:   "10 x 10 Blister",
	Strength:    "625mg",
	Status:      models.StatusActive,
}

func TestFilenames(t *testing.T) {
	require.Equal(t, "Augmocil_625mg_Leaflet.txt", LeafletFilename("Augmocil 625mg"))
	require.Equal(t, "Vitamin_D3_1000_IU_Product_Information.pdf", PDFFilename("Vitamin D3  1000\tIU"))
	require.Equal(t, "_Augmocil_625mg_Leaflet.txt", LeafletFilename(" Augmocil 625mg"))
	require.Equal(t, `attachment; filename="a_b.pdf"`, ContentDisposition("a_b.pdf"))
}

func TestLeaflet(t *testing.T) {
	now := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)

	t.Run("ContainsEverySection", func(t *testing.T) {
		out := Leaflet(augmocil, DefaultBranding(), now)
		for _, header := range []string{
			"PRODUCT INFORMATION", "COMPOSITION", "THERAPEUTIC INDICATIONS", "MECHANISM OF ACTION",
			"DOSAGE AND ADMINISTRATION", "CONTRAINDICATIONS", "WARNINGS AND PRECAUTIONS", "SIDE EFFECTS",
			"DRUG INTERACTIONS", "PHARMACOKINETICS", "STORAGE CONDITIONS", "IMPORTANT SAFETY INFORMATION",
			"DISPOSAL", "MANUFACTURER INFORMATION", "CONTACT INFORMATION",
		} {
			require.Contains(t, out, "\n"+header+"\n"+rule+"\n", header)
		}
		for _, tier := range []string{commonTier, uncommonTier, rareTier} {
			require.Contains(t, out, tier)
		}
		require.True(t, strings.HasPrefix(out, "PATIENT INFORMATION LEAFLET\nAugmocil 625mg\nMedivance Healthcare Ltd.\n"))
		require.Equal(t, 63, len([]rune(rule)))
	})

	t.Run("RendersProductAndEnrichment", func(t *testing.T) {
		out := Leaflet(augmocil, DefaultBranding(), now)
		e := enrichment.Resolve(augmocil)

		require.Contains(t, out, "Active Ingredient: Augmocil\n")
		require.Contains(t, out, "Category: Antibiotics\n")
		require.Contains(t, out, "Adults: 1 capsule every 12 hours\n")
		require.Contains(t, out, "License Number: ML-000001\n")
		require.Contains(t, out, e.Composition+"\n")
		for _, w := range e.Warnings {
			require.Contains(t, out, "• "+w+"\n")
		}
		require.Contains(t, out, "• C. difficile colitis\n")
		require.Contains(t, out, "Shelf Life: 36 months from date of manufacture\n")
	})

	t.Run("StampsRenderDate", func(t *testing.T) {
		out := Leaflet(augmocil, DefaultBranding(), now)
		require.Contains(t, out, "This leaflet was last updated: 3/7/2024\n")
		require.True(t, strings.HasSuffix(out, disclaimer+"\n"+rule+"\n"))
	})

	t.Run("DeterministicExceptTimestamp", func(t *testing.T) {
		first := Leaflet(augmocil, DefaultBranding(), now)
		second := Leaflet(augmocil, DefaultBranding(), now)
		require.Equal(t, first, second)

		later := Leaflet(augmocil, DefaultBranding(), now.AddDate(0, 1, 3))
		firstLines := strings.Split(first, "\n")
		laterLines := strings.Split(later, "\n")
		require.Equal(t, len(firstLines), len(laterLines))

		var differing []string
		for i := range firstLines {
			if firstLines[i] != laterLines[i] {
				differing = append(differing, laterLines[i])
			}
		}
		require.Equal(t, []string{"This leaflet was last updated: 4/10/2024"}, differing)
	})

	t.Run("UsesBranding", func(t *testing.T) {
		out := Leaflet(augmocil, NewBranding("Acme Pharma Ltd."), now)
		require.Contains(t, out, "\nAcme Pharma Ltd.\nLicense Number:")
		require.Equal(t, "ACME PHARMA", NewBranding("Acme Pharma Ltd.").Masthead)
	})
}

func TestPDF(t *testing.T) {
	now := time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC)

	t.Run("ProducesPDFBytes", func(t *testing.T) {
		data, err := PDF(augmocil, DefaultBranding(), now)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		require.True(t, bytes.Contains(data, []byte("%%EOF")))
	})

	t.Run("EveryCategoryRenders", func(t *testing.T) {
		for _, o := range models.CategoryOptions {
			p := augmocil
			p.Category = o.Value
			data, err := PDF(p, DefaultBranding(), now)
			require.NoError(t, err, o.Value)
			require.NotEmpty(t, data)
		}
	})

	t.Run("FooterOnEveryPage", func(t *testing.T) {
		doc, err := newDocument(augmocil, DefaultBranding(), now)
		require.NoError(t, err)
		pages := doc.PageCount()
		require.GreaterOrEqual(t, pages, 2)

		doc.SetCompression(false)
		var buf bytes.Buffer
		require.NoError(t, doc.Output(&buf))
		out := buf.String()
		for i := 1; i <= pages; i++ {
			require.Contains(t, out, fmt.Sprintf("Page %d of %d", i, pages))
		}
		require.Equal(t, pages, strings.Count(out, "This leaflet was last updated: 3/7/2024"))
		require.Equal(t, pages, strings.Count(out, disclaimer))
	})

	t.Run("LongContentAddsPages", func(t *testing.T) {
		short, err := newDocument(augmocil, DefaultBranding(), now)
		require.NoError(t, err)

		long := augmocil
		long.Indication = strings.Repeat("Indicated for long-term management of chronic conditions. ", 120)
		doc, err := newDocument(long, DefaultBranding(), now)
		require.NoError(t, err)
		require.Greater(t, doc.PageCount(), short.PageCount())
	})

	t.Run("BodyTextStaysInsideMargins", func(t *testing.T) {
		long := augmocil
		long.Indication = strings.Repeat("Indicated for long-term management of chronic conditions. ", 120)
		long.Dosage = strings.Repeat("Take with food and a full glass of water; ", 40)
		products := []models.Product{augmocil, long}
		for _, o := range models.CategoryOptions {
			p := long
			p.Category = o.Value
			products = append(products, p)
		}

		for _, p := range products {
			pages := map[int]bool{}
			doc, err := buildDocument(p, DefaultBranding(), now, func(page int, y float64) {
				pages[page] = true
				require.GreaterOrEqual(t, y, pageMargin, "%s page %d", p.Category, page)
				require.LessOrEqual(t, y, 297-pageMargin, "%s page %d", p.Category, page)
			})
			require.NoError(t, err)
			require.Len(t, pages, doc.PageCount(), p.Category)
		}
	})

	t.Run("WriterFailureIsReported", func(t *testing.T) {
		err := WritePDF(failingWriter{}, augmocil, DefaultBranding(), now)
		require.ErrorIs(t, err, ErrRender)
	})
}

func TestGuard(t *testing.T) {
	err := guard(func() error { panic("font table corrupted") })
	require.ErrorIs(t, err, ErrRender)
	require.Contains(t, err.Error(), "font table corrupted")

	sentinel := errors.New("boom")
	require.ErrorIs(t, guard(func() error { return sentinel }), sentinel)
	require.NoError(t, guard(func() error { return nil }))
}

func TestCursor(t *testing.T) {
	pages := 1
	c := cursor{y: 45, top: 20, limit: 277}
	c.newPage = func() { pages++ }

	t.Run("FitsWithoutBreak", func(t *testing.T) {
		require.False(t, c.ensure(200))
		require.Equal(t, 45.0, c.y)
		require.Equal(t, 1, pages)
	})

	t.Run("ExactFitStaysOnPage", func(t *testing.T) {
		c.y = 237
		require.False(t, c.ensure(40))
		require.Equal(t, 1, pages)
	})

	t.Run("OverflowStartsPageAtTop", func(t *testing.T) {
		c.y = 240
		require.True(t, c.ensure(40))
		require.Equal(t, 20.0, c.y)
		require.Equal(t, 2, pages)
	})

	t.Run("OversizedRequestDoesNotSkipFreshPage", func(t *testing.T) {
		c.y = c.top
		require.False(t, c.ensure(1000))
		require.Equal(t, 2, pages)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
