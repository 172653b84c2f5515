package divination

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"這份工作適合我嗎", "career"},
		{"我會升遷嗎", "career"},
		{"我和他有緣分嗎，會結婚嗎", "love"},
		{"這個月財運如何", "wealth"},
		{"適合買房嗎", "property"},
		{"考試會順利嗎", "study"},
		{"身體檢查結果如何", "health"},
		{"這次合作能談成嗎", "cooperation"},
		{"今天天氣如何", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := Classify(tt.question); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.question, got, tt.want)
		}
	}
}

// 多类别关键词同时命中时，按类别表顺序先匹配者优先
func TestClassifyFirstMatchWins(t *testing.T) {
	if got := Classify("結婚後的財運如何"); got != "love" {
		t.Errorf("Classify = %s, want love（感情在财运之前）", got)
	}
}

func TestCategoryByCode(t *testing.T) {
	if c := CategoryByCode("love"); c.Name != "感情" {
		t.Errorf("CategoryByCode(love).Name = %s, want 感情", c.Name)
	}
	if c := CategoryByCode("unknown"); c.Code != "other" {
		t.Errorf("未知编码应回落到兜底类别，得到 %s", c.Code)
	}
}
