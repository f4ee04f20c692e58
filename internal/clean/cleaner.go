// Package clean normalizes raw course records and removes duplicates.
package clean

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// DefaultDedupeKeys is used when no keys are configured.
var DefaultDedupeKeys = []string{"course_name", "instructor"}

// dedupeAliases accepts the Chinese column names used in exported sheets.
var dedupeAliases = map[string]string{
	"课程名称":     "course_name",
	"讲师":       "instructor",
	"课时":       "hours",
	"周次":       "week",
	"地点":       "location",
	"节次":       "section",
	"分类":       "category",
	"时间段":      "time_period",
	"文件来源":     "source_file",
	"sheet/页码": "sheet_or_page",
}

// Options configures a Cleaner.
type Options struct {
	DedupeKeys          []string
	TeacherBlacklist    []string
	DepartmentBlacklist []string
	NameWhitelist       []string
	NameMinRunes        int
	NameMaxRunes        int
	MaxRawRunes         int
}

// OptionsFromConfig derives cleaner options from the application config.
func OptionsFromConfig(cfg *common.Config) Options {
	return Options{
		DedupeKeys:          cfg.DedupeKeys,
		TeacherBlacklist:    cfg.TeacherBlacklist,
		DepartmentBlacklist: cfg.DepartmentBlacklist,
		NameWhitelist:       cfg.NameWhitelist,
		NameMinRunes:        cfg.Names.MinRunes,
		NameMaxRunes:        cfg.Names.MaxRunes,
		MaxRawRunes:         cfg.Names.MaxRawRunes,
	}
}

// Cleaner turns raw records into cleaned, deduplicated records. It keeps no
// state between calls, so Clean is deterministic for a given input.
type Cleaner struct {
	keys   []string
	names  *NameValidator
	logger *slog.Logger
}

// NewCleaner validates the dedupe keys and creates a Cleaner.
func NewCleaner(opts Options, logger *slog.Logger) (*Cleaner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	keys, err := NormalizeDedupeKeys(opts.DedupeKeys)
	if err != nil {
		return nil, err
	}
	return &Cleaner{
		keys: keys,
		names: NewNameValidator(opts.NameMinRunes, opts.NameMaxRunes, opts.MaxRawRunes,
			opts.TeacherBlacklist, opts.DepartmentBlacklist, opts.NameWhitelist),
		logger: logger,
	}, nil
}

// DedupeKeys returns the normalized dedupe key names in use.
func (c *Cleaner) DedupeKeys() []string {
	return append([]string(nil), c.keys...)
}

// NormalizeDedupeKeys maps Chinese aliases to field names and rejects
// unknown fields. An empty list yields the defaults.
func NormalizeDedupeKeys(keys []string) ([]string, error) {
	if len(keys) == 0 {
		return append([]string(nil), DefaultDedupeKeys...), nil
	}
	out := make([]string, 0, len(keys))
	var zero entity.CleanedCourseRecord
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if alias, ok := dedupeAliases[k]; ok {
			k = alias
		}
		if _, ok := zero.Field(k); !ok {
			return nil, common.NewAppError("INVALID_DEDUPE_KEY", fmt.Sprintf("unknown dedupe key %q", k), common.ErrInvalidInput)
		}
		out = append(out, k)
	}
	return out, nil
}

// Clean normalizes raws in order and keeps the first record per dedupe key.
func (c *Cleaner) Clean(ctx context.Context, raws []entity.RawCourseRecord) []entity.CleanedCourseRecord {
	logger := common.LoggerFromContext(ctx, c.logger)

	out := make([]entity.CleanedCourseRecord, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	var dropped, dupes int

	for _, raw := range raws {
		name := NormalizeCourseName(raw.CourseName)
		if utf8.RuneCountInString(name) < 2 {
			dropped++
			continue
		}

		hours, err := ParseHours(raw.HoursRaw)
		if err != nil {
			logger.Warn("clean.hours.parse_failed",
				"locator", raw.SourceLocator, "value", fmt.Sprint(raw.HoursRaw), "err", err)
			hours = 0
		}

		rec := entity.CleanedCourseRecord{
			CourseName:             name,
			Instructor:             c.names.Resolve(raw.InstructorRaw, raw.SourceOriginalNameText, name),
			Hours:                  hours,
			Category:               CategoryFor(raw),
			Week:                   strings.TrimSpace(raw.WeekRaw),
			Location:               strings.TrimSpace(raw.LocationRaw),
			Section:                strings.TrimSpace(raw.SectionRaw),
			TimePeriod:             strings.TrimSpace(raw.TimePeriodRaw),
			Note:                   raw.Note,
			SourceFile:             raw.SourceFile,
			SheetOrPage:            raw.SheetOrPage,
			SourceLocator:          raw.SourceLocator,
			SourceOriginalNameText: raw.SourceOriginalNameText,
		}

		key := c.key(rec)
		if _, dup := seen[key]; dup {
			dupes++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}

	logger.Info("clean.done", "raw", len(raws), "cleaned", len(out), "dropped", dropped, "duplicates", dupes)
	return out
}

func (c *Cleaner) key(rec entity.CleanedCourseRecord) string {
	parts := make([]string, len(c.keys))
	for i, k := range c.keys {
		parts[i], _ = rec.Field(k)
	}
	return strings.Join(parts, "\x1f")
}

var disallowedNameChars = regexp.MustCompile(`[^\p{L}\p{N}·•\-()（）【】:：,，;；/\\\s]`)

// NormalizeCourseName removes every character outside the allow-list
// (letters of any script, digits, · • - ( ) （ ） 【 】 : ： , ， ; ； / \ and
// whitespace) and trims the result.
func NormalizeCourseName(raw string) string {
	return strings.TrimSpace(disallowedNameChars.ReplaceAllString(raw, ""))
}

var digitRun = regexp.MustCompile(`\d+`)

// ParseHours reads an hour count from a number or free text. For text the
// largest digit run wins, so "36课时(12实验)" is 36. Text without digits is 0.
func ParseHours(v any) (int, error) {
	switch h := v.(type) {
	case nil:
		return 0, nil
	case int:
		return max(h, 0), nil
	case int32:
		return max(int(h), 0), nil
	case int64:
		return max(int(h), 0), nil
	case uint:
		return int(h), nil
	case float32:
		return floatHours(float64(h))
	case float64:
		return floatHours(h)
	case string:
		return stringHours(h)
	case fmt.Stringer:
		return stringHours(h.String())
	}
	return 0, fmt.Errorf("unsupported hours type %T", v)
}

func floatHours(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("hours is not a finite number: %v", f)
	}
	if f <= 0 {
		return 0, nil
	}
	if f > math.MaxInt32 {
		return 0, fmt.Errorf("hours out of range: %v", f)
	}
	return int(f), nil
}

func stringHours(s string) (int, error) {
	runs := digitRun.FindAllString(width.Fold.String(s), -1)
	best := 0
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", r, err)
		}
		best = max(best, n)
	}
	return best, nil
}

// CategoryFor canonicalizes the raw category. Without one, timetable records
// fall back to a "weekday-period" composite and everything else is unclassified.
func CategoryFor(raw entity.RawCourseRecord) string {
	if s := strings.TrimSpace(raw.CategoryRaw); s != "" {
		cat, _ := constants.Canonicalize(s)
		return string(cat)
	}
	if raw.Weekday != "" {
		period := raw.Period
		if period == "" {
			period = constants.UnknownPeriod
		}
		return raw.Weekday + "-" + period
	}
	return string(constants.Unclassified)
}
