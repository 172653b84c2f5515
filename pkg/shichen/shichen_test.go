package shichen

import "testing"

func TestForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{23, "子時"}, // 跨日起点
		{0, "子時"},  // 跨日次日段
		{1, "丑時"},
		{6, "卯時"},
		{11, "午時"},
		{12, "午時"},
		{15, "申時"},
		{22, "亥時"},
	}
	for _, tt := range tests {
		if got := ForHour(tt.hour); got.Name != tt.want {
			t.Errorf("ForHour(%d) = %s, want %s", tt.hour, got.Name, tt.want)
		}
	}
}

func TestForHourCoversAllHours(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		s := ForHour(hour)
		if s.Name == "" {
			t.Errorf("ForHour(%d) 未命中任何时辰", hour)
		}
	}
}

func TestBonusFor(t *testing.T) {
	tests := []struct {
		slot, hex string
		kind      string
		score     int
	}{
		{"水", "水", "比和", 10},
		{"水", "木", "相生", 5},  // 水生木
		{"水", "金", "相生", 8},  // 金生水
		{"水", "火", "相剋", -5}, // 水克火
		{"水", "土", "相剋", -8}, // 土克水
	}
	for _, tt := range tests {
		got := BonusFor(tt.slot, tt.hex)
		if got.Kind != tt.kind || got.Score != tt.score {
			t.Errorf("BonusFor(%s, %s) = %s/%d, want %s/%d",
				tt.slot, tt.hex, got.Kind, got.Score, tt.kind, tt.score)
		}
	}
}

func TestRelationsSymmetry(t *testing.T) {
	// 生克关系应两两互逆：A 生 B ⇔ B 的"生我"是 A
	for elem, rel := range relations {
		if relations[rel.generates].generatedBy != elem {
			t.Errorf("%s 生 %s，但 %s 的生我不是 %s", elem, rel.generates, rel.generates, elem)
		}
		if relations[rel.overcomes].overcomeBy != elem {
			t.Errorf("%s 克 %s，但 %s 的克我不是 %s", elem, rel.overcomes, rel.overcomes, elem)
		}
	}
}
