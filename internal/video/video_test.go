package video

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLatestAudio(t *testing.T) {
	dir := t.TempDir()

	older := filepath.Join(dir, "culture_art_20250309_080000.mp3")
	if err := os.WriteFile(older, []byte("a"), 0o644); err != nil {
		t.Fatalf("写入文件: %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(older, past, past); err != nil {
		t.Fatalf("修改时间: %v", err)
	}

	newer := filepath.Join(dir, "culture_music_20250310_080000.mp3")
	if err := os.WriteFile(newer, []byte("b"), 0o644); err != nil {
		t.Fatalf("写入文件: %v", err)
	}

	// 非mp3文件应被忽略
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("写入文件: %v", err)
	}

	latest, err := LatestAudio(dir)
	if err != nil {
		t.Fatalf("LatestAudio: %v", err)
	}
	if latest != newer {
		t.Errorf("期望 %s，得到 %s", newer, latest)
	}
}

func TestLatestAudioEmpty(t *testing.T) {
	if _, err := LatestAudio(t.TempDir()); err == nil {
		t.Error("空目录应返回错误")
	}
}

func TestWriteDefaultBackground(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "background.jpg")

	if err := writeDefaultBackground(path, 108, 192); err != nil {
		t.Fatalf("writeDefaultBackground: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("打开背景图: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("解码背景图: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 108 || bounds.Dy() != 192 {
		t.Errorf("背景图尺寸错误: %dx%d", bounds.Dx(), bounds.Dy())
	}
}
