package clean

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/joseph-ayodele/course-stats/constants"
)

// noiseTokens mark a raw instructor value as a misread class, major or
// course fragment.
var noiseTokens = []string{"未安排", "课", "本", "班", "计算", "大数据", "电信", "信息", "实验室"}

// candidateNoise are substrings that disqualify a name candidate lifted from
// the original cell text.
var candidateNoise = []string{"学", "科", "本", "班", "院", "系", "专", "实验", "楼", "室", "号"}

// commonSurnames is a reference set of frequent single-character family names.
var commonSurnames = func() map[rune]struct{} {
	const list = "王李张刘陈杨黄赵吴周徐孙马朱胡郭何高林罗郑梁谢宋唐许韩冯邓曹彭曾肖田董袁潘于蒋蔡余杜叶程苏魏吕丁任沈姚卢姜崔钟谭陆汪范金石廖贾夏韦付方白邹孟熊秦邱江尹薛闫段雷侯龙史陶黎贺顾毛郝龚邵万钱严覃武戴莫孔向汤常温康施文牛樊葛邢安齐易乔伍庞颜倪庄聂章鲁岳翟殷詹申欧耿关兰焦俞左柳甘祝包宁尚符舒阮柯纪梅童凌毕单季裴霍涂成苗谷盛曲翁冉骆蓝路游辛靳管柴蒙鲍华喻祁蒲房滕屈饶解牟艾尤阳时穆农司卓古吉缪简车项连芦麦褚娄窦戚岑景党宫费卜冷晏席卫米柏宗瞿桂全佟应臧闵苟邬边卞姬师和仇栾隋商刁沙荣巫寇桑郎甄丛仲虞敖巩明佘池查麻苑迟邝"
	set := make(map[rune]struct{}, utf8.RuneCountInString(list))
	for _, r := range list {
		set[r] = struct{}{}
	}
	return set
}()

var (
	digitRe      = regexp.MustCompile(`\d`)
	classSuffix  = regexp.MustCompile(`/?\s*\d{2}[\p{Han}\w\s-]{0,20}本`)
	serialNo     = regexp.MustCompile(`-\d{3,}`)
	sectionParen = regexp.MustCompile(`\(\d+-\d+节\)`)
	anyParen     = regexp.MustCompile(`\([^)]*\)`)
	blankRun     = regexp.MustCompile(`[\s\x{00A0}]+`)
	partSep      = regexp.MustCompile(`[\n/;|,]+`)
	hanRun       = regexp.MustCompile(`[\p{Han}·•]{2,6}`)
)

// NameValidator decides whether a raw instructor value is a person's name and
// recovers one from the original cell text when it is not.
type NameValidator struct {
	shape       *regexp.Regexp
	blacklist   []string
	departments []string
	whitelist   map[string]struct{}
	maxRawRunes int
}

// NewNameValidator creates a validator accepting CJK names of
// minRunes..maxRunes characters.
func NewNameValidator(minRunes, maxRunes, maxRawRunes int, blacklist, departments, whitelist []string) *NameValidator {
	if minRunes < 1 {
		minRunes = 2
	}
	if maxRunes < minRunes {
		maxRunes = minRunes
	}
	if maxRawRunes < 1 {
		maxRawRunes = 30
	}
	v := &NameValidator{
		shape:       regexp.MustCompile(fmt.Sprintf(`^[\p{Han}·•]{%d,%d}$`, minRunes, maxRunes)),
		blacklist:   lowerNonEmpty(blacklist),
		departments: lowerNonEmpty(departments),
		whitelist:   make(map[string]struct{}, len(whitelist)),
		maxRawRunes: maxRawRunes,
	}
	for _, w := range whitelist {
		if w = strings.TrimSpace(w); w != "" {
			v.whitelist[w] = struct{}{}
		}
	}
	return v
}

// Resolve returns a validated instructor name, or the unassigned sentinel.
func (v *NameValidator) Resolve(raw, sourceText, courseName string) string {
	t := strings.TrimSpace(raw)
	if t == constants.UnknownInstructor {
		t = ""
	}
	if t != "" && v.rejects(t, courseName) {
		t = ""
	}
	if t == "" && strings.TrimSpace(sourceText) != "" {
		t = v.rederive(sourceText, courseName)
	}
	if t == "" || !v.shape.MatchString(t) {
		return constants.Unassigned
	}
	return t
}

func (v *NameValidator) rejects(t, courseName string) bool {
	if containsAny(strings.ToLower(t), v.blacklist) || containsAny(t, noiseTokens) {
		return true
	}
	if digitRe.MatchString(t) || utf8.RuneCountInString(t) > v.maxRawRunes {
		return true
	}
	if courseName != "" {
		a := strings.ReplaceAll(t, " ", "")
		b := strings.ReplaceAll(courseName, " ", "")
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return true
		}
	}
	return !v.shape.MatchString(t)
}

// rederive looks for a name in the untouched cell text.
func (v *NameValidator) rederive(sourceText, courseName string) string {
	var candidates []string
	for _, part := range partSep.Split(precleanSource(sourceText), -1) {
		for _, f := range hanRun.FindAllString(part, -1) {
			switch {
			case courseName != "" && strings.Contains(courseName, f):
			case containsAny(strings.ToLower(f), v.blacklist):
			case containsAny(f, candidateNoise):
			case digitRe.MatchString(f):
			default:
				candidates = append(candidates, f)
			}
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !containsAny(strings.ToLower(c), v.departments) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		filtered = candidates
	}

	chosen := v.choose(filtered)
	if !v.shape.MatchString(chosen) {
		return ""
	}
	return chosen
}

// choose prefers, scanning from the end: a whitelisted name, then a name
// starting with a common surname, then any shape-valid candidate, then the
// last candidate.
func (v *NameValidator) choose(cands []string) string {
	for i := len(cands) - 1; i >= 0; i-- {
		if _, ok := v.whitelist[cands[i]]; ok {
			return cands[i]
		}
	}
	for i := len(cands) - 1; i >= 0; i-- {
		first, _ := utf8.DecodeRuneInString(cands[i])
		if _, ok := commonSurnames[first]; ok && v.shape.MatchString(cands[i]) {
			return cands[i]
		}
	}
	for i := len(cands) - 1; i >= 0; i-- {
		if v.shape.MatchString(cands[i]) {
			return cands[i]
		}
	}
	return cands[len(cands)-1]
}

// precleanSource strips class codes, serial numbers, parenthetical notes and
// placeholders from cell text before name candidates are collected.
func precleanSource(s string) string {
	s = width.Fold.String(s)
	s = strings.ReplaceAll(s, constants.Unassigned, "")
	s = classSuffix.ReplaceAllString(s, "")
	s = serialNo.ReplaceAllString(s, "")
	s = sectionParen.ReplaceAllString(s, "")
	s = anyParen.ReplaceAllString(s, "")
	s = strings.TrimSpace(blankRun.ReplaceAllString(s, " "))
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}
	return s
}

func containsAny(s string, toks []string) bool {
	for _, t := range toks {
		if t != "" && strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func lowerNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
