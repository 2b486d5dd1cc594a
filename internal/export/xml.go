package export

import (
	"fmt"
	"strings"
)

// Page geometry in twips: A4 210x297mm with ~10mm margins, matching the
// preview's print layout.
const (
	pageWidthTwips  = 11906
	pageHeightTwips = 16838
	pageMarginTwips = 567
)

const bodyTextColor = "222222"

// runOpts control the direct formatting of a single text run.
type runOpts struct {
	Bold   bool
	Italic bool
	// Size in half-points; zero means the document default.
	Size int
}

// xmlBuilder accumulates WordprocessingML paragraphs with a shared default
// font, size, and section band fill.
type xmlBuilder struct {
	sb       strings.Builder
	font     string
	bodySize int
	fill     string
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

func (b *xmlBuilder) runProps(opts runOpts) string {
	size := opts.Size
	if size == 0 {
		size = b.bodySize
	}
	var props strings.Builder
	props.WriteString("<w:rPr>")
	fmt.Fprintf(&props, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s"/>`, escapeXML(b.font))
	if opts.Bold {
		props.WriteString("<w:b/>")
	}
	if opts.Italic {
		props.WriteString("<w:i/>")
	}
	fmt.Fprintf(&props, `<w:color w:val="%s"/>`, bodyTextColor)
	fmt.Fprintf(&props, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size)
	props.WriteString("</w:rPr>")
	return props.String()
}

func (b *xmlBuilder) run(text string, opts runOpts) string {
	return fmt.Sprintf(`<w:r>%s<w:t xml:space="preserve">%s</w:t></w:r>`,
		b.runProps(opts), escapeXML(text))
}

// para writes a paragraph with optional paragraph properties and any number
// of pre-built runs.
func (b *xmlBuilder) para(pPr string, runs ...string) {
	b.sb.WriteString("<w:p>")
	if pPr != "" {
		b.sb.WriteString("<w:pPr>" + pPr + "</w:pPr>")
	}
	for _, r := range runs {
		b.sb.WriteString(r)
	}
	b.sb.WriteString("</w:p>")
}

// sectionHeading writes the uppercase band paragraph shaded with the theme
// fill.
func (b *xmlBuilder) sectionHeading(title string) {
	pPr := fmt.Sprintf(
		`<w:shd w:val="clear" w:color="auto" w:fill="%s"/><w:spacing w:before="200" w:after="100"/>`,
		strings.ToUpper(b.fill))
	b.para(pPr, b.run(title, runOpts{Bold: true, Size: 22}))
}

// bulletPara writes one bulleted list item, referencing the numbering
// definition shipped in the base template.
func (b *xmlBuilder) bulletPara(text string) {
	pPr := `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr><w:spacing w:after="0"/>`
	b.para(pPr, b.run(text, runOpts{}))
}

// centeredPara writes a centered paragraph from runs.
func (b *xmlBuilder) centeredPara(spacingAfter int, runs ...string) {
	pPr := fmt.Sprintf(`<w:jc w:val="center"/><w:spacing w:after="%d"/>`, spacingAfter)
	b.para(pPr, runs...)
}

// document wraps the accumulated body in the document envelope with A4 page
// geometry.
func (b *xmlBuilder) document() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		"<w:body>" + b.sb.String() +
		fmt.Sprintf(
			`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>`,
			pageWidthTwips, pageHeightTwips,
			pageMarginTwips, pageMarginTwips, pageMarginTwips, pageMarginTwips) +
		"</w:body></w:document>"
}
