package podcast

import (
	"context"
	"log"
	"os"
	"time"

	"culture-podcast/config"
	"culture-podcast/internal/artifact"
	"culture-podcast/internal/content"
	"culture-podcast/internal/models"
	"culture-podcast/internal/script"
	"culture-podcast/internal/tts"
)

// Generator 每日文化播客生成器
type Generator struct {
	cfg      *config.Config
	provider *content.Provider
	tts      tts.Service
	writer   *artifact.Writer
	now      func() time.Time
}

// NewGenerator 创建播客生成器并准备输出目录
func NewGenerator(cfg *config.Config, provider *content.Provider, svc tts.Service, writer *artifact.Writer) (*Generator, error) {
	if err := EnsureDirectories(cfg.Directories); err != nil {
		return nil, err
	}

	return &Generator{
		cfg:      cfg,
		provider: provider,
		tts:      svc,
		writer:   writer,
		now:      time.Now,
	}, nil
}

// EnsureDirectories 创建全部输出目录，可重复调用
func EnsureDirectories(dirs config.DirectoriesConfig) error {
	for _, dir := range []string{
		dirs.PodcastOutput,
		dirs.MetadataOutput,
		dirs.ScriptsOutput,
		dirs.VideosOutput,
		dirs.AssetsDir,
	} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Generate 执行一次完整的播客生成，失败时返回nil。
// 流水线内任何异常都不会向调用方扩散。
func (g *Generator) Generate(ctx context.Context, theme string) (result *models.GenerationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ 播客生成异常: %v", r)
			result = nil
		}
	}()

	// 1. 获取今日内容
	log.Println("📚 获取今日文化内容...")
	record, err := g.provider.DailyContent(ctx, theme, g.now())
	if err != nil {
		log.Printf("❌ 获取内容失败: %v", err)
		return nil
	}
	log.Printf("✅ 主题: %s", record.ThemeCN)
	log.Printf("📖 标题: %s", record.Content.Title)

	// 2. 创建脚本
	log.Println("📝 创建播客脚本...")
	composed := script.Compose(record, g.now())
	log.Printf("📄 脚本长度: %d 字符", len([]rune(composed)))

	// 3. 保存脚本
	scriptPath, err := g.writer.WriteScript(composed, record.Theme, g.now())
	if err != nil {
		log.Printf("❌ 保存脚本失败: %v", err)
		return nil
	}
	log.Printf("💾 脚本已保存: %s", scriptPath)

	// 4. 生成音频
	log.Println("🔊 生成音频文件...")
	audioPath := g.writer.AudioPath(record.Theme, g.cfg.Audio.OutputFormat, g.now())

	opts := tts.Options{
		Voice:  g.cfg.Audio.DefaultVoice,
		Rate:   g.cfg.Audio.SpeechRate,
		Volume: g.cfg.Audio.SpeechVolume,
	}
	if err := tts.SaveSpeech(ctx, g.tts, composed, opts, audioPath); err != nil {
		log.Printf("❌ 音频生成失败: %v", err)
		return nil
	}

	// 5. 检查音频文件
	info, err := os.Stat(audioPath)
	if err != nil || info.Size() == 0 {
		log.Println("❌ 音频文件未生成")
		return nil
	}

	fileSizeMB := float64(info.Size()) / 1024 / 1024
	log.Printf("✅ 音频生成成功: %s (%.1fMB)", info.Name(), fileSizeMB)

	// 6. 保存元数据
	log.Println("📋 保存元数据...")
	stats := models.RunStats{
		AudioSizeMB:              fileSizeMB,
		ScriptLength:             len([]rune(composed)),
		EstimatedDurationMinutes: record.Content.DurationMinutes,
		Difficulty:               record.Content.Difficulty,
	}

	metadataPath, err := g.writer.WriteMetadata(stats, record, composed, audioPath, g.now())
	if err != nil {
		log.Printf("❌ 保存元数据失败: %v", err)
		return nil
	}
	log.Printf("💾 元数据已保存: %s", metadataPath)

	return &models.GenerationResult{
		Success:      true,
		Theme:        record.Theme,
		ThemeCN:      record.ThemeCN,
		Title:        record.Content.Title,
		AudioPath:    audioPath,
		MetadataPath: metadataPath,
		ScriptPath:   scriptPath,
		FileSizeMB:   fileSizeMB,
	}
}
