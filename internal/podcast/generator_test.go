package podcast

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"culture-podcast/config"
	"culture-podcast/internal/artifact"
	"culture-podcast/internal/content"
	"culture-podcast/internal/tts"
)

// stubTTS 返回固定音频数据或固定错误
type stubTTS struct {
	audio []byte
	err   error
}

func (s *stubTTS) SynthesizeSpeech(ctx context.Context, text string, opts tts.Options) ([]byte, error) {
	return s.audio, s.err
}

func (s *stubTTS) Provider() string {
	return "stub"
}

func testConfig(t *testing.T) *config.Config {
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Directories = config.DirectoriesConfig{
		PodcastOutput:  filepath.Join(root, "audio"),
		MetadataOutput: filepath.Join(root, "metadata"),
		ScriptsOutput:  filepath.Join(root, "scripts"),
		VideosOutput:   filepath.Join(root, "videos"),
		AssetsDir:      filepath.Join(root, "assets"),
	}
	return cfg
}

func newTestGenerator(t *testing.T, cfg *config.Config, svc tts.Service) *Generator {
	g, err := NewGenerator(cfg, content.NewProvider(nil), svc, artifact.NewWriter(cfg.Directories, cfg.Naming))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	g.now = func() time.Time {
		return time.Date(2025, 3, 10, 9, 15, 30, 0, time.Local)
	}
	return g
}

func TestGenerateSuccess(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGenerator(t, cfg, &stubTTS{audio: []byte("fake mp3 data")})

	result := g.Generate(context.Background(), "art")
	if result == nil {
		t.Fatal("期望生成成功")
	}
	if !result.Success {
		t.Error("Success应为true")
	}
	if result.Theme != "art" || result.ThemeCN != "艺术" {
		t.Errorf("主题错误: %s %s", result.Theme, result.ThemeCN)
	}

	for _, path := range []string{result.AudioPath, result.ScriptPath, result.MetadataPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("产物文件不存在: %s", path)
		}
	}

	// 元数据应与生成的内容一致
	data, err := os.ReadFile(result.MetadataPath)
	if err != nil {
		t.Fatalf("读取元数据: %v", err)
	}
	var meta struct {
		Theme string `json:"theme"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("解析元数据: %v", err)
	}
	if meta.Theme != "art" {
		t.Errorf("元数据主题错误: %s", meta.Theme)
	}

	record, err := content.DailyContent("art", time.Date(2025, 3, 10, 9, 15, 30, 0, time.Local))
	if err != nil {
		t.Fatalf("DailyContent: %v", err)
	}
	if meta.Title != record.Content.Title {
		t.Errorf("元数据标题错误: %s", meta.Title)
	}

	if result.FileSizeMB <= 0 {
		t.Error("文件大小应大于0")
	}
}

func TestGenerateEmptyAudio(t *testing.T) {
	cfg := testConfig(t)
	// 合成"成功"但音频为空，后置校验应拦截
	g := newTestGenerator(t, cfg, &stubTTS{audio: []byte{}})

	result := g.Generate(context.Background(), "music")
	if result != nil {
		t.Fatal("空音频文件应导致生成失败")
	}

	assertNoFiles(t, cfg.Directories.MetadataOutput)
}

func TestGenerateSynthesisError(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGenerator(t, cfg, &stubTTS{err: errors.New("网络错误")})

	result := g.Generate(context.Background(), "film")
	if result != nil {
		t.Fatal("合成失败时应返回nil")
	}

	// 脚本在合成之前落盘，失败后应保留
	scriptPath := filepath.Join(cfg.Directories.ScriptsOutput, "script_film_20250310.txt")
	if _, err := os.Stat(scriptPath); err != nil {
		t.Errorf("脚本文件应保留: %v", err)
	}

	// 不应产生元数据
	assertNoFiles(t, cfg.Directories.MetadataOutput)
}

func TestGenerateDefaultTheme(t *testing.T) {
	cfg := testConfig(t)
	g := newTestGenerator(t, cfg, &stubTTS{audio: []byte("fake mp3 data")})

	result := g.Generate(context.Background(), "")
	if result == nil {
		t.Fatal("不指定主题也应生成成功")
	}
	if !content.ValidTheme(result.Theme) {
		t.Errorf("轮换出的主题不合法: %s", result.Theme)
	}
}

func assertNoFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("读取目录: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("目录 %s 应为空，实际有 %d 个文件", dir, len(entries))
	}
}
