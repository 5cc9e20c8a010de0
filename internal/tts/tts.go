package tts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"culture-podcast/config"
)

// Options 语音合成参数
type Options struct {
	Voice  string // 发声人，如 zh-CN-XiaoxiaoNeural
	Rate   string // 语速调整，带符号百分比，如 "+5%"
	Volume string // 音量调整，带符号分贝，如 "+2dB"
}

// Service 定义TTS服务接口
type Service interface {
	// SynthesizeSpeech 将文本转换为语音
	SynthesizeSpeech(ctx context.Context, text string, opts Options) ([]byte, error)

	// Provider 返回TTS提供商名称
	Provider() string
}

// Factory 创建TTS服务
func Factory(cfg *config.TTSConfig) (Service, error) {
	// 根据配置选择TTS服务
	switch cfg.Provider {
	case "edge":
		return NewEdgeTTS(cfg.EdgeTTS)
	case "aliyun":
		return NewAliyunTTS(cfg.AliyunTTS)
	default:
		// 默认使用Edge TTS
		return NewEdgeTTS(cfg.EdgeTTS)
	}
}

// SaveSpeech 合成语音并写入目标文件。
// 合成或写入失败时目标位置可能残留空文件或不完整文件，由调用方校验文件大小。
func SaveSpeech(ctx context.Context, svc Service, text string, opts Options, outputPath string) error {
	audio, err := svc.SynthesizeSpeech(ctx, text, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建音频目录失败: %w", err)
	}

	if err := os.WriteFile(outputPath, audio, 0o644); err != nil {
		return fmt.Errorf("写入音频文件失败: %w", err)
	}
	return nil
}
