package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"culture-podcast/config"
	"culture-podcast/internal/models"
)

// MetadataVersion 元数据结构版本号
const MetadataVersion = "1.0"

// Writer 负责把脚本和元数据写入磁盘
type Writer struct {
	dirs   config.DirectoriesConfig
	naming config.NamingConfig
}

// NewWriter 创建产物写入器
func NewWriter(dirs config.DirectoriesConfig, naming config.NamingConfig) *Writer {
	return &Writer{dirs: dirs, naming: naming}
}

// ScriptPath 返回脚本文件路径，按天命名，同一天重复生成会覆盖
func (w *Writer) ScriptPath(theme string, now time.Time) string {
	name := fmt.Sprintf("script_%s_%s.txt", theme, now.Format("20060102"))
	return filepath.Join(w.dirs.ScriptsOutput, name)
}

// AudioPath 返回音频文件路径，按秒命名
func (w *Writer) AudioPath(theme, ext string, now time.Time) string {
	name := fmt.Sprintf("culture_%s_%s%s.%s", theme, now.Format("20060102_150405"), w.suffix(), ext)
	return filepath.Join(w.dirs.PodcastOutput, name)
}

// MetadataPath 返回元数据文件路径，按秒命名
func (w *Writer) MetadataPath(theme string, now time.Time) string {
	name := fmt.Sprintf("culture_%s_%s%s.json", theme, now.Format("20060102_150405"), w.suffix())
	return filepath.Join(w.dirs.MetadataOutput, name)
}

// suffix 可选的随机后缀，避免同一秒内的命名冲突
func (w *Writer) suffix() string {
	if !w.naming.UniqueSuffix {
		return ""
	}
	return "_" + uuid.NewString()[:8]
}

// WriteScript 保存完整脚本
func (w *Writer) WriteScript(script, theme string, now time.Time) (string, error) {
	path := w.ScriptPath(theme, now)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("创建脚本目录失败: %w", err)
	}

	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return "", fmt.Errorf("写入脚本失败: %w", err)
	}
	return path, nil
}

// WriteMetadata 保存元数据
func (w *Writer) WriteMetadata(stats models.RunStats, record *models.ContentRecord, script, audioPath string, now time.Time) (string, error) {
	meta := models.Metadata{
		AudioSizeMB:              stats.AudioSizeMB,
		ScriptLength:             stats.ScriptLength,
		EstimatedDurationMinutes: stats.EstimatedDurationMinutes,
		Difficulty:               stats.Difficulty,
		Theme:                    record.Theme,
		ThemeCN:                  record.ThemeCN,
		Title:                    record.Content.Title,
		ContentPreview:           truncate(record.Content.Body, 200) + "...",
		Keywords:                 record.Content.Keywords,
		ScriptPreview:            preview(script, 500),
		AudioFile:                filepath.Base(audioPath),
		AudioPath:                audioPath,
		GeneratedAt:              now.Format(time.RFC3339),
		Version:                  MetadataVersion,
	}

	path := w.MetadataPath(record.Theme, now)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("创建元数据目录失败: %w", err)
	}

	// 不转义HTML，保持中文内容可读
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("序列化元数据失败: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("写入元数据失败: %w", err)
	}
	return path, nil
}

// truncate 按字符数截断，不截断多字节字符
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// preview 超长文本截断并加省略号，否则原样返回
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
