// Package weeks turns free-text teaching-week descriptors into interval tokens.
package weeks

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

const (
	OddSuffix  = "(单)"
	EvenSuffix = "(双)"
)

var (
	segmentSep = regexp.MustCompile(`[,;、\s]+`)
	rangeRe    = regexp.MustCompile(`^(\d+)-(\d+)$`)
	singleRe   = regexp.MustCompile(`^\d+$`)
	stripper   = strings.NewReplacer("周", "", "第", "")
)

// Parse converts a week descriptor such as "1-16周", "1-12周(单)" or "3周,5周"
// into ordered interval tokens. Unrecognized segments are dropped, so an empty
// result means the descriptor carried no usable week information.
func Parse(s string) []string {
	s = stripper.Replace(width.Fold.String(s))
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	out := make([]string, 0, 2)
	for _, seg := range segmentSep.Split(s, -1) {
		if seg == "" {
			continue
		}
		seg, suffix := splitParity(seg)

		if m := rangeRe.FindStringSubmatch(seg); m != nil {
			a, errA := strconv.Atoi(m[1])
			b, errB := strconv.Atoi(m[2])
			if errA != nil || errB != nil {
				continue
			}
			if a > b {
				a, b = b, a
			}
			out = append(out, strconv.Itoa(a)+"-"+strconv.Itoa(b)+suffix)
			continue
		}
		if singleRe.MatchString(seg) {
			out = append(out, seg)
		}
	}
	return out
}

// splitParity removes a parenthetical from seg and reports the parity suffix
// it encoded, if any.
func splitParity(seg string) (string, string) {
	i := strings.Index(seg, "(")
	if i < 0 {
		return seg, ""
	}
	paren := seg[i:]
	seg = seg[:i]
	switch {
	case strings.Contains(paren, "单"):
		return seg, OddSuffix
	case strings.Contains(paren, "双"):
		return seg, EvenSuffix
	}
	return seg, ""
}
