package tts

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"culture-podcast/config"
)

type fakeService struct {
	audio []byte
	err   error
}

func (f *fakeService) SynthesizeSpeech(ctx context.Context, text string, opts Options) ([]byte, error) {
	return f.audio, f.err
}

func (f *fakeService) Provider() string {
	return "fake"
}

func TestFactory(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"edge", "edge"},
		{"aliyun", "aliyun"},
		{"unknown", "edge"},
		{"", "edge"},
	}

	for _, tt := range tests {
		cfg := &config.TTSConfig{Provider: tt.provider}
		svc, err := Factory(cfg)
		if err != nil {
			t.Fatalf("Factory(%s): %v", tt.provider, err)
		}
		if svc.Provider() != tt.want {
			t.Errorf("Factory(%s) = %s, 期望 %s", tt.provider, svc.Provider(), tt.want)
		}
	}
}

func TestSaveSpeech(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "test.mp3")
	svc := &fakeService{audio: []byte("audio data")}

	if err := SaveSpeech(context.Background(), svc, "测试", Options{}, path); err != nil {
		t.Fatalf("SaveSpeech: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取音频: %v", err)
	}
	if string(data) != "audio data" {
		t.Error("音频内容不一致")
	}
}

func TestSaveSpeechError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mp3")
	svc := &fakeService{err: errors.New("配额超限")}

	if err := SaveSpeech(context.Background(), svc, "测试", Options{}, path); err == nil {
		t.Fatal("合成失败时应返回错误")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("合成失败时不应写入文件")
	}
}

func TestEscapeXML(t *testing.T) {
	got := escapeXML(`文化 & <艺术> "引号" '单引号'`)
	want := "文化 &amp; &lt;艺术&gt; &quot;引号&quot; &apos;单引号&apos;"
	if got != want {
		t.Errorf("escapeXML = %s", got)
	}
}

func TestAliyunRate(t *testing.T) {
	tests := []struct {
		rate string
		want int
	}{
		{"+5%", 25},
		{"-10%", -50},
		{"+0%", 0},
		{"+200%", 500},
		{"-200%", -500},
		{"bad", 0},
	}

	for _, tt := range tests {
		if got := aliyunRate(tt.rate); got != tt.want {
			t.Errorf("aliyunRate(%s) = %d, 期望 %d", tt.rate, got, tt.want)
		}
	}
}

func TestAliyunVolume(t *testing.T) {
	tests := []struct {
		volume string
		want   int
	}{
		{"+2dB", 60},
		{"-2dB", 40},
		{"+0dB", 50},
		{"+20dB", 100},
		{"-20dB", 0},
		{"bad", 50},
	}

	for _, tt := range tests {
		if got := aliyunVolume(tt.volume); got != tt.want {
			t.Errorf("aliyunVolume(%s) = %d, 期望 %d", tt.volume, got, tt.want)
		}
	}
}
