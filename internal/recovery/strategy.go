package recovery

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// InstructorStrategy is one way of finding an instructor among the
// separator-split segments of a cell. Extract returns the name and the
// segments with the consumed text removed.
type InstructorStrategy interface {
	Name() string
	Extract(segs []string) (name string, rest []string, ok bool)
}

// NameRules decides whether a string can be a person's name.
type NameRules struct {
	shape   *regexp.Regexp
	blocked []string
	maxRaw  int
}

// builtinBlocked are department, class and building fragments that never
// appear in a real name segment.
var builtinBlocked = []string{"本", "班", "院", "系", "专业", "楼", "室", "馆", "中心", "未安排", "unassigned"}

// NewNameRules builds rules for names of minRunes..maxRunes CJK characters
// (middle dots allowed). Any segment containing one of blocked is refused.
func NewNameRules(minRunes, maxRunes, maxRaw int, blocked ...[]string) NameRules {
	if minRunes < 1 {
		minRunes = 2
	}
	if maxRunes < minRunes {
		maxRunes = minRunes
	}
	if maxRaw < 1 {
		maxRaw = 30
	}
	r := NameRules{
		shape:   regexp.MustCompile(fmt.Sprintf(`^[\p{Han}·•]{%d,%d}$`, minRunes, maxRunes)),
		blocked: append([]string{}, builtinBlocked...),
		maxRaw:  maxRaw,
	}
	for _, list := range blocked {
		for _, tok := range list {
			if tok = strings.TrimSpace(tok); tok != "" {
				r.blocked = append(r.blocked, strings.ToLower(tok))
			}
		}
	}
	return r
}

// HasShape reports whether s is a CJK name within the configured bounds.
func (r NameRules) HasShape(s string) bool {
	return r.shape.MatchString(s)
}

func (r NameRules) isBlocked(s string) bool {
	low := strings.ToLower(s)
	for _, tok := range r.blocked {
		if strings.Contains(low, tok) {
			return true
		}
	}
	return false
}

// plausible is the looser check used for suffix matches: any script, but no
// digits, no blocked tokens and not overly long.
func (r NameRules) plausible(s string) bool {
	if s == "" || hasDigit.MatchString(s) || r.isBlocked(s) {
		return false
	}
	if utf8.RuneCountInString(s) > r.maxRaw {
		return false
	}
	return nameChars.MatchString(s)
}

var (
	hasDigit   = regexp.MustCompile(`\d`)
	nameChars  = regexp.MustCompile(`^[\p{L}·•.\s]+$`)
	labeledRe  = regexp.MustCompile(`(?:讲师|教师|授课人)\s*:\s*([^,;/\\()]+)`)
	trailParen = regexp.MustCompile(`\s*\(.*$`)
	suffixRe   = regexp.MustCompile(`:\s*([^:]+)$`)
)

// DefaultStrategies returns the instructor strategies in priority order.
func DefaultStrategies(rules NameRules) []InstructorStrategy {
	return []InstructorStrategy{
		LabeledStrategy{},
		SegmentStrategy{Rules: rules},
		SuffixStrategy{Rules: rules},
	}
}

// LabeledStrategy matches an explicit "讲师:"/"教师:"/"授课人:" label.
type LabeledStrategy struct{}

func (LabeledStrategy) Name() string { return "labeled" }

func (LabeledStrategy) Extract(segs []string) (string, []string, bool) {
	for i, seg := range segs {
		m := labeledRe.FindStringSubmatchIndex(seg)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(seg[m[2]:m[3]])
		if name == "" {
			continue
		}
		rest := cloneSegs(segs)
		rest[i] = strings.TrimSpace(seg[:m[0]] + seg[m[1]:])
		return name, rest, true
	}
	return "", segs, false
}

// SegmentStrategy picks the last name-shaped segment. The first segment is
// reserved for the course name and never considered.
type SegmentStrategy struct {
	Rules NameRules
}

func (SegmentStrategy) Name() string { return "segment" }

func (s SegmentStrategy) Extract(segs []string) (string, []string, bool) {
	for i := len(segs) - 1; i >= 1; i-- {
		cand := strings.TrimSpace(trailParen.ReplaceAllString(segs[i], ""))
		if cand == "" || hasDigit.MatchString(cand) || s.Rules.isBlocked(cand) {
			continue
		}
		if !s.Rules.HasShape(cand) {
			continue
		}
		rest := cloneSegs(segs)
		rest[i] = ""
		return cand, rest, true
	}
	return "", segs, false
}

// SuffixStrategy accepts a plausible name at the very end of the cell, either
// after a colon or as the final separated segment.
type SuffixStrategy struct {
	Rules NameRules
}

func (SuffixStrategy) Name() string { return "suffix" }

func (s SuffixStrategy) Extract(segs []string) (string, []string, bool) {
	last := -1
	for i := len(segs) - 1; i >= 0; i-- {
		if strings.TrimSpace(segs[i]) != "" {
			last = i
			break
		}
	}
	if last < 0 {
		return "", segs, false
	}

	seg := segs[last]
	var cand, remaining string
	if m := suffixRe.FindStringSubmatchIndex(seg); m != nil {
		cand = seg[m[2]:m[3]]
		remaining = seg[:m[0]]
	} else if last > 0 {
		cand = seg
	} else {
		return "", segs, false
	}

	cand = strings.TrimSpace(trailParen.ReplaceAllString(cand, ""))
	if !s.Rules.plausible(cand) {
		return "", segs, false
	}
	rest := cloneSegs(segs)
	rest[last] = strings.TrimSpace(remaining)
	return cand, rest, true
}

func cloneSegs(segs []string) []string {
	out := make([]string, len(segs))
	copy(out, segs)
	return out
}
