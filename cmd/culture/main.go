package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"culture-podcast/config"
	"culture-podcast/internal/ai"
	"culture-podcast/internal/artifact"
	"culture-podcast/internal/content"
	"culture-podcast/internal/podcast"
	"culture-podcast/internal/storage"
	"culture-podcast/internal/tts"
)

func main() {
	theme := flag.String("theme", "", "指定主题: art, history, literature, music, film, museum")
	test := flag.Bool("test", false, "测试模式，不生成音频")
	flag.Parse()

	// 验证主题参数
	if *theme != "" && !content.ValidTheme(*theme) {
		fmt.Printf("❌ 无效主题，可选: %s\n", strings.Join(content.Themes(), ", "))
		os.Exit(1)
	}

	if *test {
		fmt.Println("🧪 测试模式...")
		record, err := content.DailyContent(*theme, time.Now())
		if err != nil {
			fmt.Printf("❌ 获取内容失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("主题: %s\n", record.ThemeCN)
		fmt.Printf("标题: %s\n", record.Content.Title)
		fmt.Printf("内容预览:\n%s...\n", truncate(record.Content.Body, 300))
		return
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("🎨 每日文化播客生成系统")
	fmt.Println(strings.Repeat("=", 60))

	cfg := config.LoadConfig()

	ttsService, err := tts.Factory(&cfg.TTS)
	if err != nil {
		log.Fatalf("创建TTS服务失败: %v", err)
	}

	var enricher content.Enricher
	if cfg.OpenAI.Enrich && cfg.OpenAI.APIKey != "" {
		enricher = ai.NewClient(&cfg.OpenAI)
	}

	provider := content.NewProvider(enricher)
	writer := artifact.NewWriter(cfg.Directories, cfg.Naming)

	generator, err := podcast.NewGenerator(cfg, provider, ttsService, writer)
	if err != nil {
		log.Fatalf("创建生成器失败: %v", err)
	}

	result := generator.Generate(context.Background(), *theme)
	if result == nil {
		fmt.Println("\n❌ 播客生成失败")
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ 文化播客生成成功！")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("🎭 主题: %s\n", result.ThemeCN)
	fmt.Printf("📖 标题: %s\n", result.Title)
	fmt.Printf("📦 大小: %.1f MB\n", result.FileSizeMB)
	fmt.Printf("📁 位置: %s\n", result.AudioPath)
	fmt.Println(strings.Repeat("=", 60))

	// 按配置发布到对象存储
	if cfg.Publish.Enabled {
		minioClient, err := storage.NewMinioClient(&cfg.MinIO)
		if err != nil {
			log.Printf("创建MinIO客户端失败: %v", err)
		} else if url, err := minioClient.PublishGeneration(context.Background(), result); err != nil {
			log.Printf("发布到对象存储失败: %v", err)
		} else {
			fmt.Printf("📡 已发布: %s\n", url)
		}
	}

	fmt.Println("\n🎉 播客生成完成！")
	fmt.Printf("🎧 收听地址: %s\n", result.AudioPath)
}

// truncate 按字符数截断
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
