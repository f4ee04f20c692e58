package common

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidatorRules(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		rules []ValidationRule
		want  []string
	}{
		{name: "required blank", value: "  ", rules: []ValidationRule{Required}, want: []string{"is required"}},
		{name: "required nil", value: nil, rules: []ValidationRule{Required}, want: []string{"is required"}},
		{name: "rune range counts runes", value: "课程表", rules: []ValidationRule{RuneRange(1, 3)}},
		{name: "rune range too long", value: "课程统计表", rules: []ValidationRule{RuneRange(1, 3)}, want: []string{"must be at most 3 characters"}},
		{name: "rune range too short", value: "", rules: []ValidationRule{RuneRange(1, 3)}, want: []string{"must be at least 1 characters"}},
		{name: "uuid ok", value: "5d2c7e0a-1f3b-4c6d-8e9f-0a1b2c3d4e5f", rules: []ValidationRule{UUID}},
		{name: "uuid malformed", value: "latest", rules: []ValidationRule{UUID}, want: []string{"must be a valid UUID"}},
		{name: "uuid not a string", value: 42, rules: []ValidationRule{UUID}, want: []string{"must be a string"}},
		{name: "one of", value: "csv", rules: []ValidationRule{OneOf("workbook", "csv")}},
		{name: "one of miss", value: "pdf", rules: []ValidationRule{OneOf("workbook", "csv")}, want: []string{"must be one of [workbook, csv]"}},
		{name: "min count", value: 0, rules: []ValidationRule{MinCount(1)}, want: []string{"must have at least 1 entries"}},
		{name: "min count not an int", value: "1", rules: []ValidationRule{MinCount(1)}, want: []string{"must be an integer"}},
		{name: "rules accumulate", value: "", rules: []ValidationRule{Required, RuneRange(1, 3)}, want: []string{"is required", "must be at least 1 characters"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator().Field("f", tt.value, tt.rules...)
			var got []string
			for _, e := range v.errors {
				got = append(got, e.Message)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("messages (-want +got):\n%s", diff)
			}
			if v.HasErrors() != (len(tt.want) > 0) {
				t.Errorf("HasErrors = %v", v.HasErrors())
			}
		})
	}
}

func TestValidateAndReturnError(t *testing.T) {
	if err := ValidateAndReturnError(NewValidator().Field("root", "/data", Required)); err != nil {
		t.Fatalf("valid input: %v", err)
	}
	err := ValidateAndReturnError(NewValidator().Field("root", "", Required))
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
	want := "validation failed for field 'root' with value '': is required"
	if got := status.Convert(err).Message(); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}
