package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"medivance-backend/enrichment"
	"medivance-backend/models"
)

// ErrRender is returned when a document cannot be produced. No partial output accompanies it.
var ErrRender = errors.New("failed to generate product document")

const (
	pageMargin   = 20.0
	bandHeight   = 30.0
	lineFactor   = 0.4
	bodySize     = 10.0
	headingSize  = 12.0
	titleSize    = 20.0
	footerSize   = 8.0
	fontFamily   = "Helvetica"
	safetyText   = "If you experience any severe or persistent side effects, stop taking this medication and seek immediate medical attention. Always inform your healthcare provider about all medications you are taking."
	safetyHeight = 30.0
)

// PDF renders the product information sheet. On failure it returns ErrRender and no bytes.
func PDF(p models.Product, b Branding, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, p, b, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDF renders the product information sheet into w.
func WritePDF(w io.Writer, p models.Product, b Branding, now time.Time) error {
	return guard(func() error {
		doc, err := newDocument(p, b, now)
		if err != nil {
			return err
		}
		if err := doc.Output(w); err != nil {
			return fmt.Errorf("%w: %v", ErrRender, err)
		}
		return nil
	})
}

// guard converts a panic raised while building a document into ErrRender.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRender, r)
		}
	}()
	return fn()
}

// block is one wrapped paragraph. A spacer only advances the cursor by after.
type block struct {
	text   string
	indent float64
	inset  float64
	size   float64
	bold   bool
	before float64
	after  float64
	spacer bool
}

func para(text string) block {
	return block{text: text, indent: 5, inset: 10, size: bodySize, before: 5, after: 10}
}

func bullet(text string) block {
	return block{text: "• " + text, indent: 5, inset: 10, size: bodySize, before: 5, after: 3}
}

func gap(h float64) block {
	return block{spacer: true, after: h}
}

// section is a titled group of blocks. budget is the space reserved before the header is drawn.
type section struct {
	title  string
	budget float64
	blocks []block
}

func bulletSection(title string, budget float64, items []string) section {
	s := section{title: title, budget: budget}
	for _, item := range items {
		s.blocks = append(s.blocks, bullet(item))
	}
	s.blocks = append(s.blocks, gap(10))
	return s
}

func sideEffectBlocks(e enrichment.SideEffects) []block {
	tier := func(label string, before float64, items []string, trailing float64) []block {
		out := []block{{text: label, indent: 5, inset: 10, size: bodySize, bold: true, before: before, after: 5}}
		for _, item := range items {
			out = append(out, block{text: "• " + item, indent: 10, inset: 15, size: bodySize, before: 3, after: 2})
		}
		return append(out, gap(trailing))
	}
	var blocks []block
	blocks = append(blocks, tier(commonTier, 5, e.Common, 5)...)
	blocks = append(blocks, tier(uncommonTier, 0, e.Uncommon, 5)...)
	blocks = append(blocks, tier(rareTier, 0, e.Rare, 10)...)
	return blocks
}

// sections lists the body of the sheet in print order, up to the safety callout.
func sections(p models.Product, e enrichment.Enrichment) []section {
	pk := e.Pharmacokinetics
	return []section{
		{title: "COMPOSITION", budget: 25, blocks: []block{para(e.Composition)}},
		{title: "THERAPEUTIC INDICATIONS", budget: 25, blocks: []block{para(p.Indication)}},
		{title: "MECHANISM OF ACTION", budget: 25, blocks: []block{para(e.Mechanism)}},
		bulletSection("DOSAGE AND ADMINISTRATION", 35, dosageLines(p.Dosage)),
		bulletSection("CONTRAINDICATIONS", 40, e.Contraindications),
		bulletSection("WARNINGS AND PRECAUTIONS", 40, e.Warnings),
		{title: "ADVERSE REACTIONS", budget: 60, blocks: sideEffectBlocks(e.SideEffects)},
		bulletSection("DRUG INTERACTIONS", 40, e.DrugInteractions),
		bulletSection("PHARMACOKINETICS", 50, []string{
			"Absorption: " + pk.Absorption,
			"Distribution: " + pk.Distribution,
			"Metabolism: " + pk.Metabolism,
			"Elimination: " + pk.Elimination,
		}),
		{title: "STORAGE CONDITIONS", budget: 30, blocks: []block{
			{text: "Storage: " + e.Storage, indent: 5, inset: 10, size: bodySize, before: 5, after: 5},
			{text: "Shelf Life: " + e.ShelfLife, indent: 5, inset: 10, size: bodySize, after: 10},
		}},
	}
}

func manufacturerSection(p models.Product, b Branding) section {
	line := func(text string) block {
		return block{text: text, indent: 5, inset: 10, size: bodySize, before: 5, after: 3}
	}
	return section{title: "MANUFACTURER INFORMATION", budget: 40, blocks: []block{
		line(b.CompanyName),
		line("License Number: " + licenseNumber(p.ID)),
		line("Manufacturing Date: See packaging for batch-specific information"),
		gap(5),
		line("Medical Information Hotline: " + b.Hotline),
		line("Email: " + b.Email),
		line("Website: " + b.Website),
	}}
}

// cursor tracks the vertical write position and starts a new page when a block would cross the
// bottom margin.
type cursor struct {
	y       float64
	top     float64
	limit   float64
	newPage func()
}

// ensure starts a new page when required mm do not fit below y. Requests taller than a full page
// are clamped so a fresh page is never skipped.
func (c *cursor) ensure(required float64) bool {
	if usable := c.limit - c.top; required > usable {
		required = usable
	}
	if c.y+required <= c.limit {
		return false
	}
	c.newPage()
	c.y = c.top
	return true
}

type renderer struct {
	doc          *fpdf.Fpdf
	tr           func(string) string
	cur          cursor
	pageWidth    float64
	pageHeight   float64
	contentWidth float64
	trace        func(page int, y float64)
}

func newDocument(p models.Product, b Branding, now time.Time) (*fpdf.Fpdf, error) {
	return buildDocument(p, b, now, nil)
}

// buildDocument lays out the sheet. trace, when set, sees the baseline of every body text line.
func buildDocument(p models.Product, b Branding, now time.Time, trace func(page int, y float64)) (*fpdf.Fpdf, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.SetCreationDate(now)
	doc.SetCatalogSort(true)
	doc.AliasNbPages("")

	r := &renderer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), trace: trace}
	r.pageWidth, r.pageHeight = doc.GetPageSize()
	r.contentWidth = r.pageWidth - 2*pageMargin
	r.cur = cursor{top: pageMargin, limit: r.pageHeight - pageMargin, newPage: doc.AddPage}

	doc.SetTitle(p.Name, true)
	doc.SetAuthor(b.CompanyName, true)
	doc.SetCreator(b.CompanyName, true)
	doc.SetFooterFunc(func() { r.footer(FormatDate(now)) })

	e := enrichment.Resolve(p)
	doc.AddPage()
	r.masthead(b)
	r.title(p.Name)
	r.details(productDetails(p))
	for _, s := range sections(p, e) {
		r.section(s)
	}
	r.safetyCallout()
	r.section(manufacturerSection(p, b))

	if doc.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, doc.Error())
	}
	return doc, nil
}

func (r *renderer) text(x, y float64, s string) {
	if r.trace != nil {
		r.trace(r.doc.PageNo(), y)
	}
	r.doc.Text(x, y, s)
}

func (r *renderer) setFont(size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	r.doc.SetFont(fontFamily, style, size)
}

func (r *renderer) lines(b block) [][]byte {
	r.setFont(b.size, b.bold)
	return r.doc.SplitLines([]byte(r.tr(b.text)), r.contentWidth-b.inset)
}

func lineCount(lines [][]byte) int {
	return max(len(lines), 1)
}

func (r *renderer) height(b block) float64 {
	if b.spacer {
		return b.after
	}
	return b.before + float64(lineCount(r.lines(b)))*b.size*lineFactor + b.after
}

func (r *renderer) draw(b block) {
	if b.spacer {
		r.cur.y += b.after
		return
	}
	r.cur.ensure(r.height(b))
	lines := r.lines(b)
	step := b.size * lineFactor
	r.cur.y += b.before
	if len(lines) == 0 {
		r.cur.y += step
	}
	// Paragraphs longer than a page continue on the next one line by line.
	for _, l := range lines {
		r.cur.ensure(step)
		r.text(pageMargin+b.indent, r.cur.y, string(l))
		r.cur.y += step
	}
	r.cur.y += b.after
}

func (r *renderer) heading(title string) block {
	return block{text: title, indent: 5, inset: 10, size: headingSize, bold: true, before: 2}
}

// section reserves max(budget, measured height) and then draws the header band and the blocks.
func (r *renderer) section(s section) {
	need := r.height(r.heading(s.title))
	for _, b := range s.blocks {
		need += r.height(b)
	}
	r.cur.ensure(max(s.budget, need))

	r.doc.SetFillColor(240, 248, 255)
	r.doc.Rect(pageMargin, r.cur.y-5, r.contentWidth, 10, "F")
	r.doc.SetTextColor(0, 123, 191)
	r.draw(r.heading(s.title))
	r.doc.SetTextColor(0, 0, 0)
	for _, b := range s.blocks {
		r.draw(b)
	}
}

func (r *renderer) masthead(b Branding) {
	r.doc.SetFillColor(3, 2, 19)
	r.doc.Rect(0, 0, r.pageWidth, bandHeight, "F")
	r.doc.SetTextColor(255, 255, 255)
	r.setFont(24, true)
	r.doc.Text(pageMargin, 20, r.tr(b.Masthead))
	r.setFont(bodySize, false)
	r.doc.Text(pageMargin, 25, r.tr(b.Subtitle))
	r.cur.y = 45
}

func (r *renderer) title(name string) {
	r.doc.SetTextColor(0, 0, 0)
	r.setFont(titleSize, true)
	lines := r.doc.SplitLines([]byte(r.tr(name)), r.contentWidth)
	step := titleSize * lineFactor
	for i, l := range lines {
		r.text(pageMargin, r.cur.y+float64(i)*step, string(l))
	}
	r.cur.y += float64(lineCount(lines)-1)*step + 15
}

// details draws the bordered two-column box with the six key/value lines.
func (r *renderer) details(lines []string) {
	r.doc.SetDrawColor(200, 200, 200)
	r.doc.SetLineWidth(0.5)
	r.doc.Rect(pageMargin, r.cur.y, r.contentWidth, 40, "D")
	r.cur.y += 8

	r.setFont(bodySize, false)
	y := r.cur.y
	for i, d := range lines {
		x := pageMargin + 5
		if i%2 == 1 {
			x = pageMargin + r.contentWidth/2
		}
		if i%2 == 0 && i > 0 {
			y += 6
		}
		r.text(x, y, r.tr(d))
	}
	r.cur.y += 45
}

// safetyCallout draws the tinted and bordered warning box.
func (r *renderer) safetyCallout() {
	title := block{text: "IMPORTANT SAFETY INFORMATION", indent: 5, inset: 10, size: headingSize, bold: true, before: 8, after: 5}
	body := block{text: safetyText, indent: 5, inset: 10, size: bodySize, after: 15}
	box := max(safetyHeight, r.height(title)+r.height(body)-body.after+4)
	r.cur.ensure(max(40, box+body.after))

	top := r.cur.y
	r.doc.SetFillColor(255, 240, 240)
	r.doc.Rect(pageMargin, top, r.contentWidth, box, "F")
	r.doc.SetDrawColor(220, 53, 69)
	r.doc.SetLineWidth(1)
	r.doc.Rect(pageMargin, top, r.contentWidth, box, "D")

	r.doc.SetTextColor(220, 53, 69)
	r.draw(title)
	r.doc.SetTextColor(0, 0, 0)
	r.draw(body)
	if bottom := top + box + body.after; r.cur.y < bottom {
		r.cur.y = bottom
	}
	r.doc.SetLineWidth(0.5)
}

func (r *renderer) footer(date string) {
	h := r.pageHeight
	r.doc.SetDrawColor(200, 200, 200)
	r.doc.SetLineWidth(0.2)
	r.doc.Line(pageMargin, h-15, r.pageWidth-pageMargin, h-15)
	r.setFont(footerSize, false)
	r.doc.SetTextColor(100, 100, 100)
	r.doc.Text(pageMargin, h-10, r.tr("This leaflet was last updated: "+date))
	r.doc.Text(r.pageWidth-pageMargin-20, h-10, fmt.Sprintf("Page %d of {nb}", r.doc.PageNo()))
	r.doc.Text(pageMargin, h-6, r.tr(disclaimer))
}
