package extract

import "testing"

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "crlf and tabs", in: "高等数学\r\n张三\t\t1-16周", want: "高等数学\n张三 1-16周"},
		{name: "blank lines", in: "线性代数\n\n\n李四\n", want: "线性代数\n李四"},
		{name: "ideographic spaces", in: "大学  英语　　王五", want: "大学 英语 王五"},
		{name: "ruling line", in: "体育\n------\n赵六", want: "体育\n赵六"},
		{name: "line edges", in: "  计算机网络  \n  A101  ", want: "计算机网络\nA101"},
		{name: "decomposed accent", in: "Cafe\u0301 English", want: "Caf\u00e9 English"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCell(tt.in); got != tt.want {
				t.Errorf("NormalizeCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
