package weeks

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "blank", in: "  ", want: []string{}},
		{name: "simple range", in: "1-16周", want: []string{"1-16"}},
		{name: "odd weeks", in: "1-12周(单)", want: []string{"1-12(单)"}},
		{name: "odd weeks long form", in: "1-12周(单周)", want: []string{"1-12(单)"}},
		{name: "even weeks fullwidth parens", in: "2-10周（双）", want: []string{"2-10(双)"}},
		{name: "list of singles", in: "3周,5周", want: []string{"3", "5"}},
		{name: "fullwidth comma", in: "1-8周，10周", want: []string{"1-8", "10"}},
		{name: "semicolon and spaces", in: "第1-4周; 6 周", want: []string{"1-4", "6"}},
		{name: "descending range swapped", in: "16-1周", want: []string{"1-16"}},
		{name: "fullwidth digits", in: "１-１６周", want: []string{"1-16"}},
		{name: "garbage dropped", in: "全学期", want: []string{}},
		{name: "mixed keeps valid", in: "1-8周,待定,10周", want: []string{"1-8", "10"}},
		{name: "parity ignored on single", in: "3(单)", want: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseIsStateless(t *testing.T) {
	first := Parse("1-12周(单)")
	_ = Parse("3周")
	second := Parse("1-12周(单)")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Parse differs (-first +second):\n%s", diff)
	}
}
