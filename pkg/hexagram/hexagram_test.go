package hexagram

import (
	"math/rand"
	"testing"
)

func TestTableComplete(t *testing.T) {
	seen := make(map[int]string, 64)
	for _, upper := range Trigrams {
		for _, lower := range Trigrams {
			h, err := Get(upper.Name, lower.Name)
			if err != nil {
				t.Fatalf("Get(%s, %s): %v", upper.Name, lower.Name, err)
			}
			if h.Number < 1 || h.Number > 64 {
				t.Errorf("%s: 卦序 %d 超出范围", h.Name, h.Number)
			}
			if h.Name == "" {
				t.Errorf("Get(%s, %s): 卦名为空", upper.Name, lower.Name)
			}
			if _, ok := FortuneLevels[h.Fortune]; !ok {
				t.Errorf("%s: 未知吉凶等级 %q", h.Name, h.Fortune)
			}
			if prev, dup := seen[h.Number]; dup {
				t.Errorf("卦序 %d 重复: %s 与 %s", h.Number, prev, h.Name)
			}
			seen[h.Number] = h.Name
		}
	}
	if len(seen) != 64 {
		t.Errorf("卦表应覆盖 64 卦，实际 %d", len(seen))
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		upper, lower string
		number       int
		name         string
		fortune      Fortune
	}{
		{"乾", "乾", 1, "乾為天", GreatFortune},
		{"坤", "坤", 2, "坤為地", Fortunate},
		{"坤", "乾", 11, "地天泰", GreatFortune},
		{"乾", "坤", 12, "天地否", GreatCaution},
		{"坎", "坎", 29, "坎為水", GreatCaution},
	}
	for _, tt := range tests {
		h, err := Get(tt.upper, tt.lower)
		if err != nil {
			t.Fatalf("Get(%s, %s): %v", tt.upper, tt.lower, err)
		}
		if h.Number != tt.number || h.Name != tt.name || h.Fortune != tt.fortune {
			t.Errorf("Get(%s, %s) = %d %s %s, want %d %s %s",
				tt.upper, tt.lower, h.Number, h.Name, h.Fortune,
				tt.number, tt.name, tt.fortune)
		}
	}
}

func TestGetUnknownTrigram(t *testing.T) {
	if _, err := Get("日", "月"); err == nil {
		t.Error("未知基础卦应返回错误")
	}
}

func TestSymbol(t *testing.T) {
	h, _ := Get("乾", "乾")
	if got := h.Symbol(); got != "䷀" {
		t.Errorf("乾為天 Symbol = %q, want %q", got, "䷀")
	}
	h, _ = Get("坤", "坤")
	if got := h.Symbol(); got != "䷁" {
		t.Errorf("坤為地 Symbol = %q, want %q", got, "䷁")
	}
}

func TestCodeRoundTrip(t *testing.T) {
	for _, upper := range Trigrams {
		for _, lower := range Trigrams {
			h, _ := Get(upper.Name, lower.Name)
			restored, err := FromCode(h.Code())
			if err != nil {
				t.Fatalf("FromCode(%q): %v", h.Code(), err)
			}
			if restored.Number != h.Number {
				t.Errorf("FromCode(%q) = %s, want %s", h.Code(), restored.Name, h.Name)
			}
		}
	}
}

func TestFromCodeInvalid(t *testing.T) {
	for _, code := range []string{"", "乾", "乾坤坎", "ab"} {
		if _, err := FromCode(code); err == nil {
			t.Errorf("FromCode(%q) 应返回错误", code)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		ha := Draw(a)
		hb := Draw(b)
		if ha.Number != hb.Number {
			t.Fatalf("第 %d 次摇卦：相同种子得到不同卦 %s / %s", i, ha.Name, hb.Name)
		}
	}
}

func TestDrawCoversAllTrigrams(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		seen[Draw(rng).Number] = true
	}
	if len(seen) != 64 {
		t.Errorf("2000 次摇卦应覆盖全部 64 卦，实际 %d", len(seen))
	}
}

func TestElementFollowsUpperTrigram(t *testing.T) {
	h, _ := Get("離", "坎")
	if h.Element() != "火" {
		t.Errorf("火水未濟主卦五行 = %s, want 火", h.Element())
	}
}
