package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(`[ \x{00A0}\x{3000}]{2,}`)
	reMultiBlank = regexp.MustCompile(`\n{2,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-—=]{3,}\s*$`)
)

// NormalizeCell composes the text to NFC and collapses noisy whitespace
// while keeping line breaks, which separate course fields in timetable
// cells. Ruling lines that PDF text sometimes picks up are dropped.
func NormalizeCell(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(s)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

func normalizeRows(rows [][]string) {
	for _, row := range rows {
		for i, c := range row {
			row[i] = NormalizeCell(c)
		}
	}
}
