package video

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"culture-podcast/config"
)

// Generator 简易视频生成器，把静态图片和播客音频合成竖版视频
type Generator struct {
	outputDir  string
	assetsDir  string
	maxSeconds int
	width      int
	height     int
}

// NewGenerator 创建视频生成器
func NewGenerator(cfg config.VideoConfig, outputDir, assetsDir string) *Generator {
	return &Generator{
		outputDir:  outputDir,
		assetsDir:  assetsDir,
		maxSeconds: cfg.MaxDurationSeconds,
		width:      cfg.Width,
		height:     cfg.Height,
	}
}

// CheckFFmpeg 检查ffmpeg是否可用
func CheckFFmpeg() bool {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		log.Println("❌ ffmpeg未安装")
		log.Println("💡 请安装: sudo apt install ffmpeg 或 brew install ffmpeg")
		return false
	}
	return true
}

// CreateSimpleVideo 创建简单视频（静态图片+音频）。
// imagePath为空或不存在时使用生成的深色背景图。
func (g *Generator) CreateSimpleVideo(ctx context.Context, audioPath, imagePath string) (string, error) {
	if !CheckFFmpeg() {
		return "", fmt.Errorf("ffmpeg不可用")
	}

	if imagePath == "" || !fileExists(imagePath) {
		bg := filepath.Join(g.assetsDir, "background.jpg")
		if err := writeDefaultBackground(bg, g.width, g.height); err != nil {
			return "", fmt.Errorf("生成背景图失败: %w", err)
		}
		imagePath = bg
	}

	duration, err := g.probeDuration(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("获取音频时长失败: %w", err)
	}

	// 限制最长时长（视频号限制）
	if duration > float64(g.maxSeconds) {
		duration = float64(g.maxSeconds)
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("创建视频目录失败: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	outputPath := filepath.Join(g.outputDir, fmt.Sprintf("culture_video_%s.mp4", timestamp))

	log.Println("🎬 正在生成视频...")
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-t", strconv.FormatFloat(duration, 'f', -1, 64),
		"-c:a", "aac",
		"-b:a", "128k",
		"-pix_fmt", "yuv420p",
		"-vf", fmt.Sprintf("scale=%d:%d", g.width, g.height),
		"-shortest",
		"-y",
		outputPath,
	)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("视频生成失败: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return "", fmt.Errorf("视频文件未生成")
	}

	log.Printf("✅ 视频生成成功: %s (%.1fMB)", outputPath, float64(info.Size())/1024/1024)
	return outputPath, nil
}

// CreateFromLatest 用音频目录下最新的mp3生成视频
func (g *Generator) CreateFromLatest(ctx context.Context, audioDir string) (string, error) {
	latest, err := LatestAudio(audioDir)
	if err != nil {
		return "", err
	}

	log.Printf("🎵 使用最新音频: %s", filepath.Base(latest))
	return g.CreateSimpleVideo(ctx, latest, "")
}

// LatestAudio 返回目录下修改时间最新的mp3文件
func LatestAudio(audioDir string) (string, error) {
	entries, err := os.ReadDir(audioDir)
	if err != nil {
		return "", fmt.Errorf("读取音频目录失败: %w", err)
	}

	var latest string
	var latestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".mp3") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = filepath.Join(audioDir, entry.Name())
			latestMod = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("未找到音频文件")
	}
	return latest, nil
}

// probeDuration 用ffprobe获取音频时长（秒）
func (g *Generator) probeDuration(ctx context.Context, audioPath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("解析时长失败: %w", err)
	}
	return duration, nil
}

// writeDefaultBackground 生成纯色深蓝背景图
func writeDefaultBackground(path string, width, height int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 30, G: 40, B: 60, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
