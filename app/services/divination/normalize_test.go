package divination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"空输入", "", ""},
		{"剔除空白与标点", "  這份 工作，適合我嗎？ ", "這份事業適合我"},
		{"称谓折叠", "老公對我好嗎", "伴侶對我"},
		{"语气词顺序敏感", "這樣好嗎", "這樣"},
		{"填充语清除", "請問我想知道財運", "我財"},
		{"英文小写折叠", "OK嗎", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// 不同措辞的同一问题归一化后应当相同，否则同日去重会漏判
func TestNormalizeCollapsesVariants(t *testing.T) {
	variants := []string{
		"老公的工作好嗎？",
		"請問男友的職場會嗎",
		"男朋友的公司好不好",
	}
	want := Normalize(variants[0])
	for _, v := range variants[1:] {
		if got := Normalize(v); got != want {
			t.Errorf("Normalize(%q) = %q, 与 %q 的 %q 不一致", v, got, variants[0], want)
		}
	}
}

func TestSignature(t *testing.T) {
	base := Signature("U1", "工作好嗎", "2026-08-29")

	if got := Signature("U1", "  工作 好嗎？", "2026-08-29"); got != base {
		t.Error("同一问题的不同措辞应得到相同签名")
	}
	if got := Signature("U2", "工作好嗎", "2026-08-29"); got == base {
		t.Error("不同用户的签名应不同")
	}
	if got := Signature("U1", "工作好嗎", "2026-08-30"); got == base {
		t.Error("不同日期的签名应不同")
	}
	if len(base) != 64 {
		t.Errorf("签名长度应为 64 个十六进制字符，实际 %d", len(base))
	}
}
