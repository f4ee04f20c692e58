package recovery

import "testing"

func TestCarryResolveSequence(t *testing.T) {
	rows := []struct {
		explicit, section, want string
	}{
		{"上午", "1-2", "上午"},
		{"", "3-4", "上午"},
		{"下午", "5-6", "下午"},
		{"None", "7-8", "下午"},
		{"", "9-10", "下午"},
	}

	var c Carry
	for i, r := range rows {
		var got string
		got, c = c.Resolve(r.explicit, r.section)
		if got != r.want {
			t.Errorf("row %d: Resolve(%q, %q) = %q, want %q", i, r.explicit, r.section, got, r.want)
		}
	}
}

func TestCarryResolveFallbacks(t *testing.T) {
	var fresh Carry

	got, next := fresh.Resolve("", "9-10")
	if got != "晚上" {
		t.Errorf("inferred period = %q, want 晚上", got)
	}
	if next.Last() != "" {
		t.Errorf("inferred period was remembered: %q", next.Last())
	}

	if got, _ := fresh.Resolve("", ""); got != "未知时段" {
		t.Errorf("no information = %q, want 未知时段", got)
	}
	if got, _ := fresh.Resolve("/未安排", "11-12"); got != "未知时段" {
		t.Errorf("out of range section = %q, want 未知时段", got)
	}
}

func TestNormalizePeriod(t *testing.T) {
	tests := []struct {
		tp, section, want string
	}{
		{"上午", "", "上午"},
		{"早上", "", "上午"},
		{"中午", "", "下午"},
		{"下午", "", "下午"},
		{"晚上", "", "晚上"},
		{"夜间", "", "晚上"},
		{"08:00-09:40", "", "上午"},
		{"14:00", "", "下午"},
		{"19点", "", "晚上"},
		{"", "5-6", "下午"},
		{"未知时段", "1-2", "上午"},
		{"1-2节", "", "上午"},
		{"第一大节", "", "未知时段"},
		{"", "", "未知时段"},
	}
	for _, tt := range tests {
		if got := NormalizePeriod(tt.tp, tt.section); got != tt.want {
			t.Errorf("NormalizePeriod(%q, %q) = %q, want %q", tt.tp, tt.section, got, tt.want)
		}
	}
}
