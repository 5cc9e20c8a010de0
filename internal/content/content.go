package content

import (
	"context"
	"fmt"
	"log"
	"time"

	"culture-podcast/internal/models"
)

// Themes 返回全部合法主题key
func Themes() []string {
	themes := make([]string, len(themeOrder))
	copy(themes, themeOrder)
	return themes
}

// ValidTheme 判断主题key是否合法
func ValidTheme(theme string) bool {
	_, ok := themeNames[theme]
	return ok
}

// ThemeCN 返回主题的中文名，未知主题返回空字符串
func ThemeCN(theme string) string {
	return themeNames[theme]
}

// DailyContent 返回指定主题的当日内容。
// theme为空时按日轮换主题；同一天内多次调用结果相同。
func DailyContent(theme string, now time.Time) (*models.ContentRecord, error) {
	day := now.YearDay()

	if theme == "" {
		theme = themeOrder[day%len(themeOrder)]
	}

	entries, ok := database[theme]
	if !ok {
		return nil, fmt.Errorf("未知主题: %s", theme)
	}

	entry := entries[day%len(entries)]
	return &models.ContentRecord{
		Theme:   theme,
		ThemeCN: themeNames[theme],
		Content: entry,
	}, nil
}

// Enricher 可选的AI正文生成器
type Enricher interface {
	GenerateCultureBody(ctx context.Context, themeCN, title string, keywords []string) (string, error)
}

// Provider 内容提供者，内置内容库加可选的AI润色
type Provider struct {
	enricher Enricher
}

// NewProvider 创建内容提供者。enricher为nil时只用内置内容库。
func NewProvider(enricher Enricher) *Provider {
	return &Provider{enricher: enricher}
}

// DailyContent 返回当日内容。启用AI润色时会用生成的正文替换内置正文，
// 生成失败则原样返回内置内容。
func (p *Provider) DailyContent(ctx context.Context, theme string, now time.Time) (*models.ContentRecord, error) {
	record, err := DailyContent(theme, now)
	if err != nil {
		return nil, err
	}

	if p.enricher != nil {
		body, err := p.enricher.GenerateCultureBody(ctx, record.ThemeCN, record.Content.Title, record.Content.Keywords)
		if err != nil {
			log.Printf("AI正文生成失败，使用内置内容: %v", err)
		} else if body != "" {
			record.Content.Body = body
		}
	}

	return record, nil
}
