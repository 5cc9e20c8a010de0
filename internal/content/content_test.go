package content

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestValidTheme(t *testing.T) {
	for _, theme := range Themes() {
		if !ValidTheme(theme) {
			t.Errorf("%s 应是合法主题", theme)
		}
	}
	if ValidTheme("opera") {
		t.Error("opera 不应是合法主题")
	}
	if ValidTheme("") {
		t.Error("空字符串不应是合法主题")
	}
}

func TestDailyContentByTheme(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

	for _, theme := range Themes() {
		record, err := DailyContent(theme, now)
		if err != nil {
			t.Fatalf("DailyContent(%s): %v", theme, err)
		}
		if record.Theme != theme {
			t.Errorf("期望主题 %s，得到 %s", theme, record.Theme)
		}
		if record.ThemeCN == "" {
			t.Errorf("%s 缺少中文主题名", theme)
		}
		if record.Content.Title == "" || record.Content.Body == "" {
			t.Errorf("%s 内容不完整", theme)
		}
		if len(record.Content.Keywords) < 3 {
			t.Errorf("%s 关键词少于3个", theme)
		}
		if record.Content.DurationMinutes <= 0 {
			t.Errorf("%s 缺少时长估计", theme)
		}
	}
}

func TestDailyContentDeterministic(t *testing.T) {
	now := time.Date(2025, 7, 15, 6, 0, 0, 0, time.Local)

	first, err := DailyContent("history", now)
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}
	// 同一天晚些时候再取，结果应相同
	later := now.Add(10 * time.Hour)
	second, err := DailyContent("history", later)
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}

	if first.Content.Title != second.Content.Title {
		t.Error("同一天两次取内容结果不同")
	}
}

func TestDailyContentThemeRotation(t *testing.T) {
	// 未指定主题时按日轮换，连续6天应覆盖全部主题
	start := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	seen := make(map[string]bool)

	for i := 0; i < len(themeOrder); i++ {
		record, err := DailyContent("", start.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("DailyContent: %v", err)
		}
		seen[record.Theme] = true
	}

	if len(seen) != len(themeOrder) {
		t.Errorf("6天轮换覆盖了 %d 个主题，期望 %d", len(seen), len(themeOrder))
	}
}

func TestDailyContentUnknownTheme(t *testing.T) {
	if _, err := DailyContent("opera", time.Now()); err == nil {
		t.Error("未知主题应返回错误")
	}
}

type fakeEnricher struct {
	body string
	err  error
}

func (f *fakeEnricher) GenerateCultureBody(ctx context.Context, themeCN, title string, keywords []string) (string, error) {
	return f.body, f.err
}

func TestProviderEnrichment(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)

	provider := NewProvider(&fakeEnricher{body: "AI生成的正文。"})
	record, err := provider.DailyContent(context.Background(), "art", now)
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}
	if record.Content.Body != "AI生成的正文。" {
		t.Error("启用润色时应使用AI生成的正文")
	}
}

func TestProviderEnrichmentFallback(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	builtin, err := DailyContent("art", now)
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}

	provider := NewProvider(&fakeEnricher{err: errors.New("接口超时")})
	record, err := provider.DailyContent(context.Background(), "art", now)
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}
	if record.Content.Body != builtin.Content.Body {
		t.Error("润色失败时应回退到内置正文")
	}
}
