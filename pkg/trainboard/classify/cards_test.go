package classify

import "testing"

func TestCardAccent(t *testing.T) {
	tests := []struct {
		typeMarker string
		caution    string
		expected   string
	}{
		{"💪 力量", "", "#1565c0"},
		{"🎯", "保持核心收紧", "#e65100"},
		{"🔧", "", "#2e7d32"},
		{"🧘", "", "#6a1b9a"},
		{"💪", "⚠️ 膝盖不适即停", AlertAccent},
		{"", "⚠ 注意", AlertAccent},
		{"", "", DefaultAccent},
		{"其他", "", DefaultAccent},
	}

	for _, tt := range tests {
		if got := CardAccent(tt.typeMarker, tt.caution); got != tt.expected {
			t.Errorf("CardAccent(%q, %q) = %q, expected %q", tt.typeMarker, tt.caution, got, tt.expected)
		}
	}
}

func TestIntensityBadge(t *testing.T) {
	tests := []struct {
		text string
		high bool
	}{
		{"7-8", true},
		{"RPE 7", true},
		{"9", true},
		{"8", true},
		{"5-6", false},
		{"4", false},
		{"", false},
		{"轻松", false},
	}

	for _, tt := range tests {
		got := IntensityBadge(tt.text)
		if (got == highBadge) != tt.high {
			t.Errorf("IntensityBadge(%q) = %+v, expected high=%v", tt.text, got, tt.high)
		}
	}
}

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"🔴 伤病状况", "#c0392b"},
		{"🚫 禁忌动作", "#e65100"},
		{"🟢 恢复手段", "#2e7d32"},
		{"📋 训练原则", "#6a1b9a"},
		{"其他", DefaultCategory},
		{"", DefaultCategory},
	}

	for _, tt := range tests {
		if got := CategoryColor(tt.key); got != tt.expected {
			t.Errorf("CategoryColor(%q) = %q, expected %q", tt.key, got, tt.expected)
		}
	}
}

func TestIsForbiddenAndWarmup(t *testing.T) {
	if !IsForbidden("严禁：深蹲") {
		t.Error("expected forbidden marker to be detected")
	}
	if IsForbidden("深蹲") {
		t.Error("plain name must not be forbidden")
	}
	if !IsWarmup("热身（每次训练前）") || IsWarmup("第1天") {
		t.Error("warm-up detection mismatch")
	}
}
