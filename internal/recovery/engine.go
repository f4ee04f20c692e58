// Package recovery turns semi-structured timetable cells into raw course
// records.
package recovery

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/common"
)

// Options configures an Engine.
type Options struct {
	// HeaderBlacklist adds cell values that must never become a course name.
	HeaderBlacklist []string
	Rules           NameRules
	// Strategies overrides the instructor strategy chain.
	Strategies []InstructorStrategy
}

// OptionsFromConfig derives engine options from the application config.
func OptionsFromConfig(cfg *common.Config) Options {
	return Options{
		HeaderBlacklist: cfg.HeaderBlacklist,
		Rules: NewNameRules(cfg.Names.MinRunes, cfg.Names.MaxRunes, cfg.Names.MaxRawRunes,
			cfg.DepartmentBlacklist, cfg.TeacherBlacklist),
	}
}

// Engine recovers course fields from cell text. It holds no per-table state
// and is safe for concurrent use.
type Engine struct {
	strategies   []InstructorStrategy
	headerTokens map[string]struct{}
	logger       *slog.Logger
}

// NewEngine creates a recovery engine.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Rules.shape == nil {
		opts.Rules = NewNameRules(2, 6, 30)
	}
	strategies := opts.Strategies
	if len(strategies) == 0 {
		strategies = DefaultStrategies(opts.Rules)
	}
	tokens := make(map[string]struct{}, len(constants.HeaderTokens)+len(opts.HeaderBlacklist))
	for _, t := range constants.HeaderTokens {
		tokens[t] = struct{}{}
	}
	for _, t := range opts.HeaderBlacklist {
		if t = strings.TrimSpace(t); t != "" {
			tokens[t] = struct{}{}
		}
	}
	return &Engine{
		strategies:   strategies,
		headerTokens: tokens,
		logger:       logger,
	}
}

// CellFields is what a single cell yields.
type CellFields struct {
	CourseName string
	Instructor string
	Category   string
	Week       string
	Location   string
	// Note collects leftover segments such as class or major labels.
	Note string
}

var (
	weekPatterns = []*regexp.Regexp{
		regexp.MustCompile(`第?\d+\s*-\s*\d+\s*周(?:\s*\([^)]*[单双][^)]*\))?`),
		regexp.MustCompile(`第?\d+(?:\s*,\s*\d+)*\s*周(?:\s*\([^)]*[单双][^)]*\))?`),
	}
	locationRe  = regexp.MustCompile(`^[\p{Han}A-Za-z0-9#\-]{1,20}[楼室馆厅场][A-Za-z0-9#\-]{0,6}$`)
	venueRe     = regexp.MustCompile(`(?:楼|室|图书馆|体育馆|体育场|运动场|田径场|操场|报告厅|演播厅|礼堂)[A-Za-z#\-]*$`)
	separatorRe = regexp.MustCompile(`[/,;|\n]+`)
	sectionNote = regexp.MustCompile(`\(?\d+\s*-\s*\d+\s*节\)?|\(?第?\d+\s*节\)?`)
	hasLetter   = regexp.MustCompile(`[\p{L}\p{N}]`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// RecoverCell extracts course fields from one cell. It returns false when the
// cell is a placeholder, a header label, or has no recoverable course name.
func (e *Engine) RecoverCell(text string) (CellFields, bool) {
	var f CellFields
	work := strings.TrimSpace(strings.ReplaceAll(width.Fold.String(text), "\r\n", "\n"))
	if isPlaceholder(work) || e.IsHeaderToken(work) {
		return f, false
	}

	if m, at := firstMarker(work); at >= 0 {
		f.Category = string(m.Category)
		work = work[:at] + "/" + work[at+len(m.Symbol):]
	}

	for _, re := range weekPatterns {
		if loc := re.FindStringIndex(work); loc != nil {
			f.Week = strings.TrimSpace(work[loc[0]:loc[1]])
			work = work[:loc[0]] + "/" + work[loc[1]:]
			break
		}
	}

	segs := splitSegments(work)
	f.Location, segs = takeLocation(segs)

	f.Instructor = constants.UnknownInstructor
	for _, s := range e.strategies {
		if name, rest, ok := s.Extract(segs); ok {
			f.Instructor = name
			segs = rest
			break
		}
	}

	var residual []string
	for _, seg := range segs {
		seg = sectionNote.ReplaceAllString(seg, "")
		seg = strings.ReplaceAll(seg, constants.Unassigned, "")
		seg = strings.TrimFunc(spaceRun.ReplaceAllString(seg, " "), trimCut)
		if seg == "" || !hasLetter.MatchString(seg) {
			continue
		}
		residual = append(residual, seg)
	}
	if len(residual) == 0 || e.IsHeaderToken(residual[0]) {
		return f, false
	}
	f.CourseName = residual[0]
	f.Note = strings.Join(residual[1:], "/")
	return f, true
}

// IsHeaderToken reports whether s is a table header label.
func (e *Engine) IsHeaderToken(s string) bool {
	_, ok := e.headerTokens[strings.TrimSpace(s)]
	return ok
}

func splitSegments(s string) []string {
	parts := separatorRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// firstMarker returns the category marker that appears earliest in s and its
// byte offset, or -1 when s carries none.
func firstMarker(s string) (constants.Marker, int) {
	var (
		found constants.Marker
		at    = -1
	)
	for _, m := range constants.CategoryMarkers {
		if i := strings.Index(s, m.Symbol); i >= 0 && (at < 0 || i < at) {
			found, at = m, i
		}
	}
	return found, at
}

// isLocation reports whether tok looks like a building or room. Titles such
// as 金融市场 share the 场/馆/厅 endings, so without a room number the token
// must end in 楼, 室 or a known venue word.
func isLocation(tok string) bool {
	if !locationRe.MatchString(tok) {
		return false
	}
	return hasDigit.MatchString(tok) || venueRe.MatchString(tok)
}

// takeLocation removes and returns the first whitespace-delimited token that
// looks like a building or room. The leading token of the first segment is
// the course-name candidate and is never taken.
func takeLocation(segs []string) (string, []string) {
	for i, seg := range segs {
		fields := strings.Fields(seg)
		for j, tok := range fields {
			if i == 0 && j == 0 || !isLocation(tok) {
				continue
			}
			rest := cloneSegs(segs)
			rest[i] = strings.Join(append(fields[:j:j], fields[j+1:]...), " ")
			return tok, rest
		}
	}
	return "", segs
}

func trimCut(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("-:·•★☆◆◇", r)
}

var sectionRange = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)

// SectionHours estimates contact hours from a section label: a range a-b
// counts as max(1, (|b-a|+1)/2), a single section as 1, nothing as 0.
func SectionHours(section string) int {
	if m := sectionRange.FindStringSubmatch(section); m != nil {
		a, errA := strconv.Atoi(m[1])
		b, errB := strconv.Atoi(m[2])
		if errA == nil && errB == nil {
			span := b - a
			if span < 0 {
				span = -span
			}
			return max(1, (span+1)/2)
		}
	}
	if hasDigit.MatchString(section) {
		return 1
	}
	return 0
}
