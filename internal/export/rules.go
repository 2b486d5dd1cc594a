// Package export produces the portable DOCX rendition of the resume
// document. It derives everything from the document alone and shares no
// rendering code with the HTML preview; the two are held together by the
// parity tests instead.
package export

import (
	"math"
	"strconv"
	"strings"

	"github.com/resumify/resumify/internal/types"
)

// Section titles in the fixed render order.
var sectionOrder = []string{
	"PROFESSIONAL SUMMARY",
	"SKILLS",
	"INTERNSHIP & WORK EXPERIENCE",
	"EDUCATION",
	"PROJECTS",
	"CERTIFICATIONS & TRAININGS",
	"LANGUAGES KNOWN",
}

const fallbackAccent = "ea580c"

// VisibleSections returns the titles of the sections that will appear in the
// exported document, in order: non-empty repeated sections plus the summary
// when the summary text is non-blank.
func VisibleSections(doc types.ResumeDocument) []string {
	var out []string
	for _, title := range sectionOrder {
		if sectionPopulated(doc, title) {
			out = append(out, title)
		}
	}
	return out
}

func sectionPopulated(doc types.ResumeDocument, title string) bool {
	switch title {
	case "PROFESSIONAL SUMMARY":
		return strings.TrimSpace(doc.Personal.Summary) != ""
	case "SKILLS":
		return len(doc.Skills) > 0
	case "INTERNSHIP & WORK EXPERIENCE":
		return len(doc.Experience) > 0
	case "EDUCATION":
		return len(doc.Education) > 0
	case "PROJECTS":
		return len(doc.Projects) > 0
	case "CERTIFICATIONS & TRAININGS":
		return len(doc.Certifications) > 0
	case "LANGUAGES KNOWN":
		return len(doc.Languages) > 0
	}
	return false
}

// ThemeFill returns the section band color as a "#"-prefixed hex value,
// falling back to the default when the stored color does not parse.
func ThemeFill(color string) string {
	if hex, ok := hexChannels(color); ok {
		return "#" + channelsToHex(hex)
	}
	return types.DefaultThemeColor
}

// shadingFill is ThemeFill without the "#", the form WordprocessingML wants.
func shadingFill(color string) string {
	return strings.TrimPrefix(ThemeFill(color), "#")
}

// AccentColor returns the 35%-darkened accent as "#"-prefixed hex. The
// transform subtracts round(2.55*35) from each channel, clamped to [0,255].
func AccentColor(color string) string {
	return "#" + accentHex(color)
}

func accentHex(color string) string {
	ch, ok := hexChannels(color)
	if !ok {
		return fallbackAccent
	}
	delta := int(math.Round(2.55 * 35))
	for i := range ch {
		ch[i] -= delta
		if ch[i] < 0 {
			ch[i] = 0
		}
		if ch[i] > 255 {
			ch[i] = 255
		}
	}
	return channelsToHex(ch)
}

// FontSizeHalfPoints returns the default run size in half-points: 23 (11.5pt)
// for the serif families that render visually smaller, 21 (10.5pt) otherwise.
func FontSizeHalfPoints(font string) int {
	family := fontFamily(font)
	if strings.Contains(family, "Times") || strings.Contains(family, "Garamond") ||
		strings.Contains(family, "Georgia") || strings.Contains(family, "Cambria") {
		return 23
	}
	return 21
}

func fontFamily(font string) string {
	family := strings.ReplaceAll(font, `"`, "")
	if family == "" {
		return types.DefaultThemeFont
	}
	return family
}

// DateRange formats a date span; current replaces the displayed end date with
// "Present" while the stored value stays untouched.
func DateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	if start == "" {
		return end
	}
	if end == "" {
		return start
	}
	return start + " - " + end
}

// DescriptionBullets splits description text on line breaks, stripping any
// bullet or dash marker the user already typed and skipping blank lines.
func DescriptionBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, marker := range []string{"•", "-"} {
			if strings.HasPrefix(line, marker) {
				line = strings.TrimLeft(strings.TrimPrefix(line, marker), " \t")
				break
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ContactItems returns the non-empty contact fields in fixed order, with the
// protocol prefix removed from the link.
func ContactItems(p types.Personal) []string {
	link := p.LinkedIn
	link = strings.TrimPrefix(link, "https://")
	link = strings.TrimPrefix(link, "http://")

	var out []string
	for _, item := range []string{p.Phone, p.Email, link, p.Location} {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// FileName derives the deterministic download name from the person's full
// name, whitespace collapsed to underscores, with a generic fallback.
func FileName(doc types.ResumeDocument) string {
	name := strings.Join(strings.Fields(doc.Personal.FullName), "_")
	if name == "" {
		return "Resume_Resumify.docx"
	}
	return name + "_Resume_Resumify.docx"
}

func hexChannels(color string) ([3]int, bool) {
	hex := strings.TrimPrefix(color, "#")
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
	return [3]int{int(n >> 16 & 0xff), int(n >> 8 & 0xff), int(n & 0xff)}, true
}

func channelsToHex(ch [3]int) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 0, 6)
	for _, c := range ch {
		out = append(out, digits[c>>4], digits[c&0xf])
	}
	return string(out)
}
