package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		value      int
		wantFilled int
		wantLabel  string
	}{
		{"empty", 0, 0, "  0%"},
		{"three quarters", 75, 15, " 75%"},
		{"full", 100, 20, "100%"},
		{"clamped high", 140, 20, "100%"},
		{"clamped low", -5, 0, "  0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewProgressBar(20).SetValue(tt.value).Render()

			if got := strings.Count(out, "█"); got != tt.wantFilled {
				t.Errorf("Expected %d filled cells, got %d in %q", tt.wantFilled, got, out)
			}
			if got := strings.Count(out, "█") + strings.Count(out, "░"); got != 20 {
				t.Errorf("Expected 20 cells, got %d", got)
			}
			if !strings.Contains(out, tt.wantLabel) {
				t.Errorf("Expected %q in %q", tt.wantLabel, out)
			}
		})
	}
}

func TestProgressBarLabel(t *testing.T) {
	out := NewProgressBar(20).SetValue(75).SetLabel("散歩時間", "45分 / 60分").Render()

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected label line and bar line, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "散歩時間") || !strings.Contains(lines[0], "45分 / 60分") {
		t.Errorf("Unexpected label line %q", lines[0])
	}
}

func TestBadges(t *testing.T) {
	out := Badges(NewBadge("選択中"), nil, NewOutlineBadge("3", lipgloss.Color("4")))
	if !strings.Contains(out, "[選択中]") || !strings.Contains(out, "[3]") {
		t.Errorf("Unexpected badges %q", out)
	}
	if Badges() != "" {
		t.Errorf("Expected empty string for no badges")
	}
}

func TestButtonShowsKey(t *testing.T) {
	out := NewButton("詳細", "enter").SetVariant(ButtonGhost).Render()
	if !strings.Contains(out, "詳細") || !strings.Contains(out, "(enter)") {
		t.Errorf("Unexpected button %q", out)
	}

	out = NewButton("start", "").SetPrimary(true).Render()
	if strings.Contains(out, "(") {
		t.Errorf("Button without key should not show a shortcut, got %q", out)
	}
}

func TestAvatarFallback(t *testing.T) {
	if out := NewAvatar("/x.svg", "ポ", nil).Render(); !strings.Contains(out, "ポ") {
		t.Errorf("Expected initial in avatar, got %q", out)
	}
	if out := NewAvatar("", "", nil).Render(); !strings.Contains(out, "?") {
		t.Errorf("Expected ? fallback, got %q", out)
	}
}

func TestCard(t *testing.T) {
	out := NewCard("最近のお散歩記録", "body", 40).SetAction("すべて見る").Render()

	for _, want := range []string{"最近のお散歩記録", "すべて見る", "body"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in card %q", want, out)
		}
	}
	if w := lipgloss.Width(out); w != 40 {
		t.Errorf("Expected card width 40, got %d", w)
	}
}

func TestStatRow(t *testing.T) {
	row := NewStatRow(60).
		AddCard(NewStatCard("T", "45分", "今日の合計")).
		AddCard(NewStatCard("D", "2.8km", "今日の距離")).
		AddCard(NewStatCard("W", "3回", "今日の散歩"))

	out := row.Render()
	for _, want := range []string{"45分", "2.8km", "3回", "今日の距離"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in stat row", want)
		}
	}
	if NewStatRow(60).Render() != "" {
		t.Errorf("Expected empty row to render nothing")
	}
}

func TestList(t *testing.T) {
	l := NewList(30)
	l.SetItems([]ListItem{{ID: "a", Title: "通知設定"}, {ID: "b", Title: "家族共有"}, {ID: "c", Title: "Notion連携"}})

	l.MoveUp()
	if l.Selected != 0 {
		t.Errorf("MoveUp at top should stay at 0, got %d", l.Selected)
	}
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	if l.Selected != 2 {
		t.Errorf("MoveDown at bottom should stay at 2, got %d", l.Selected)
	}
	if item := l.GetSelectedItem(); item == nil || item.ID != "c" {
		t.Errorf("Expected item c selected, got %+v", item)
	}

	l.SetItems(l.Items[:1])
	if l.Selected != 0 {
		t.Errorf("Selection should be clamped after shrinking, got %d", l.Selected)
	}

	l.Suffix = "›"
	if out := l.Render(); !strings.Contains(out, "通知設定") || !strings.Contains(out, "›") {
		t.Errorf("Unexpected list %q", out)
	}
}
