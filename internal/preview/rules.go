// Package preview renders the resume document to a styled, print-ready HTML
// page. It is a pure function of the document: same input, same output.
package preview

import (
	"math"
	"strconv"
	"strings"

	"github.com/resumify/resumify/internal/types"
)

// Canonical section titles in their fixed render order. Order is not
// user-configurable.
const (
	TitleSummary        = "PROFESSIONAL SUMMARY"
	TitleSkills         = "SKILLS"
	TitleExperience     = "INTERNSHIP & WORK EXPERIENCE"
	TitleEducation      = "EDUCATION"
	TitleProjects       = "PROJECTS"
	TitleCertifications = "CERTIFICATIONS & TRAININGS"
	TitleLanguages      = "LANGUAGES KNOWN"
)

// defaultAccent is used when the theme color cannot be parsed; the darkened
// default peach lands near this brownish orange.
const defaultAccent = "#ea580c"

// accentDarkenPercent is how far the theme color is darkened for secondary
// marks like the contact separators. The accent is derived, never persisted.
const accentDarkenPercent = 35

// VisibleSections returns the titles of the sections that render at all, in
// the fixed order: a repeated section renders only when non-empty, and the
// summary only when the summary text is non-empty.
func VisibleSections(doc types.ResumeDocument) []string {
	var out []string
	if strings.TrimSpace(doc.Personal.Summary) != "" {
		out = append(out, TitleSummary)
	}
	if len(doc.Skills) > 0 {
		out = append(out, TitleSkills)
	}
	if len(doc.Experience) > 0 {
		out = append(out, TitleExperience)
	}
	if len(doc.Education) > 0 {
		out = append(out, TitleEducation)
	}
	if len(doc.Projects) > 0 {
		out = append(out, TitleProjects)
	}
	if len(doc.Certifications) > 0 {
		out = append(out, TitleCertifications)
	}
	if len(doc.Languages) > 0 {
		out = append(out, TitleLanguages)
	}
	return out
}

// ThemeFill returns the section-title band color: the stored theme color when
// it is a parseable hex value, the fixed default otherwise.
func ThemeFill(color string) string {
	if _, ok := parseHexColor(color); ok {
		return normalizeHex(color)
	}
	return types.DefaultThemeColor
}

// AccentColor derives the darker accent shade used for separator glyphs by
// reducing each channel toward zero by round(2.55 * percent), clamped to
// [0,255]. Malformed colors fall back to the default accent.
func AccentColor(color string) string {
	rgb, ok := parseHexColor(color)
	if !ok {
		return defaultAccent
	}
	delta := int(math.Round(2.55 * accentDarkenPercent))
	var out [3]int
	for i, c := range rgb {
		c -= delta
		if c < 0 {
			c = 0
		}
		if c > 255 {
			c = 255
		}
		out[i] = c
	}
	return "#" + hexByte(out[0]) + hexByte(out[1]) + hexByte(out[2])
}

// FontSizePt returns the base body size for the theme font: serif families
// that render visually smaller get the larger constant.
func FontSizePt(font string) string {
	family := strings.ReplaceAll(font, `"`, "")
	for _, serif := range []string{"Times", "Garamond", "Georgia", "Cambria"} {
		if strings.Contains(family, serif) {
			return "11.5pt"
		}
	}
	return "10.5pt"
}

// DateRange formats an experience date span. When current is set the stored
// end date is ignored for display (not cleared) and "Present" shown instead.
func DateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

// DescriptionBullets splits a multi-line description into bullet lines. A
// bullet or dash marker already present at the start of a line is stripped so
// rendering does not double it, and blank lines produce no bullets.
func DescriptionBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "•"); ok {
			line = strings.TrimLeft(after, " \t")
		} else if after, ok := strings.CutPrefix(line, "-"); ok {
			line = strings.TrimLeft(after, " \t")
		}
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ContactItems returns the non-empty contact fields in their fixed order:
// phone, email, link (protocol stripped), location. Separators go between
// consecutive items only; that is the template's job.
func ContactItems(p types.Personal) []string {
	link := strings.TrimPrefix(strings.TrimPrefix(p.LinkedIn, "https://"), "http://")
	var out []string
	for _, item := range []string{p.Phone, p.Email, link, p.Location} {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseHexColor(s string) ([3]int, bool) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return [3]int{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]int{}, false
	}
	return [3]int{int(n >> 16), int(n >> 8 & 0xff), int(n & 0xff)}, true
}

func normalizeHex(s string) string {
	rgb, ok := parseHexColor(s)
	if !ok {
		return types.DefaultThemeColor
	}
	return "#" + hexByte(rgb[0]) + hexByte(rgb[1]) + hexByte(rgb[2])
}

func hexByte(n int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[n>>4], digits[n&0xf]})
}
