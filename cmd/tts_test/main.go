package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"culture-podcast/config"
	"culture-podcast/internal/tts"
)

// 独立的TTS连通性测试工具，验证配置的TTS服务是否可用
func main() {
	cfg := config.LoadConfig()

	ttsService, err := tts.Factory(&cfg.TTS)
	if err != nil {
		log.Fatalf("创建TTS服务失败: %v", err)
	}

	// 测试文本
	text := "这是一段测试文本，用于验证语音合成服务是否正常工作。"

	log.Printf("开始测试 %s TTS...", ttsService.Provider())

	// 设置超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	opts := tts.Options{
		Voice:  cfg.Audio.DefaultVoice,
		Rate:   cfg.Audio.SpeechRate,
		Volume: cfg.Audio.SpeechVolume,
	}

	startTime := time.Now()
	audio, err := ttsService.SynthesizeSpeech(ctx, text, opts)
	duration := time.Since(startTime)

	if err != nil {
		log.Fatalf("❌ 转换失败: %v", err)
	}

	// 保存音频文件
	filename := fmt.Sprintf("tts_check_%s.mp3", ttsService.Provider())
	if err := os.WriteFile(filename, audio, 0o644); err != nil {
		log.Fatalf("❌ 保存音频文件失败: %v", err)
	}

	log.Printf("✅ 转换成功! 文件: %s, 大小: %d 字节, 耗时: %v", filename, len(audio), duration)
}
