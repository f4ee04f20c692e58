package clean

import (
	"testing"

	"github.com/joseph-ayodele/course-stats/constants"
)

func TestNameValidatorResolve(t *testing.T) {
	v := NewNameValidator(2, 6, 30, []string{"测试"}, []string{"计算机", "数学"}, nil)

	tests := []struct {
		name       string
		raw        string
		source     string
		courseName string
		want       string
	}{
		{"valid raw name kept", "张三", "高等数学/张三", "高等数学", "张三"},
		{"middle dot name", "阿依·木", "", "体育", "阿依·木"},
		{"class label rederived", "23计算机本", "高等数学/张三/23计算机本", "高等数学", "张三"},
		{"unknown sentinel rederived", constants.UnknownInstructor, "线性代数/李四", "线性代数", "李四"},
		{"nothing to rederive", constants.UnknownInstructor, "高等数学/未安排", "高等数学", constants.Unassigned},
		{"course name echoed", "高等数学", "", "高等数学", constants.Unassigned},
		{"latin name", "John Smith", "", "大学英语", constants.Unassigned},
		{"blacklisted", "测试员", "", "物理", constants.Unassigned},
		{"too long", "张三李四王五赵六", "", "物理", constants.Unassigned},
		{"empty everything", "", "", "物理", constants.Unassigned},
		{"serial and paren noise", "", "数据结构-1024/王五(1-2节)", "数据结构", "王五"},
		{"department candidate dropped", "", "计算机导论/计算机/周七", "计算机导论", "周七"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Resolve(tt.raw, tt.source, tt.courseName); got != tt.want {
				t.Errorf("Resolve(%q, %q, %q) = %q, want %q", tt.raw, tt.source, tt.courseName, got, tt.want)
			}
		})
	}
}

func TestNameValidatorPrefersWhitelist(t *testing.T) {
	plain := NewNameValidator(2, 6, 30, nil, nil, nil)
	if got := plain.Resolve("", "李四/王五", "物理"); got != "王五" {
		t.Errorf("without whitelist got %q, want 王五", got)
	}

	listed := NewNameValidator(2, 6, 30, nil, nil, []string{"李四"})
	if got := listed.Resolve("", "李四/王五", "物理"); got != "李四" {
		t.Errorf("with whitelist got %q, want 李四", got)
	}
}

func TestNameValidatorBounds(t *testing.T) {
	v := NewNameValidator(2, 3, 30, nil, nil, nil)
	if got := v.Resolve("欧阳明月", "", "物理"); got != constants.Unassigned {
		t.Errorf("four runes with max 3: got %q", got)
	}
	if got := v.Resolve("欧阳明", "", "物理"); got != "欧阳明" {
		t.Errorf("three runes with max 3: got %q", got)
	}
}
