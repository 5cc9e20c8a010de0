package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"culture-podcast/config"
)

func testServer(t *testing.T) *Server {
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Directories = config.DirectoriesConfig{
		PodcastOutput:  filepath.Join(root, "audio"),
		MetadataOutput: filepath.Join(root, "metadata"),
		ScriptsOutput:  filepath.Join(root, "scripts"),
		VideosOutput:   filepath.Join(root, "videos"),
		AssetsDir:      filepath.Join(root, "assets"),
	}

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return server
}

func TestHealthHandler(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("状态码 %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %s", resp["status"])
	}
}

func TestThemesHandler(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/themes", nil)
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 %d", w.Code)
	}

	var resp struct {
		Themes []struct {
			Theme   string `json:"theme"`
			ThemeCN string `json:"theme_cn"`
		} `json:"themes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应: %v", err)
	}
	if len(resp.Themes) != 6 {
		t.Errorf("主题数量 %d，期望 6", len(resp.Themes))
	}
}

func TestGenerateHandlerInvalidTheme(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/generate", strings.NewReader(`{"theme":"opera"}`))
	req.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("无效主题应返回400，实际 %d", w.Code)
	}
}

func TestGenerateHandlerTestMode(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/generate", strings.NewReader(`{"theme":"art","test":true}`))
	req.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Theme   string   `json:"theme"`
		ThemeCN string   `json:"theme_cn"`
		Title   string   `json:"title"`
		Preview string   `json:"content_preview"`
		Keyword []string `json:"keywords"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应: %v", err)
	}
	if resp.Theme != "art" || resp.ThemeCN != "艺术" {
		t.Errorf("主题错误: %s %s", resp.Theme, resp.ThemeCN)
	}
	if resp.Title == "" || resp.Preview == "" {
		t.Error("测试模式应返回内容预览")
	}

	// 测试模式不应产生任何文件
	entries, err := os.ReadDir(server.config.Directories.PodcastOutput)
	if err != nil {
		t.Fatalf("读取音频目录: %v", err)
	}
	if len(entries) != 0 {
		t.Error("测试模式不应生成音频")
	}
}

func TestServeAudioHandler(t *testing.T) {
	server := testServer(t)

	name := "culture_art_20250310_091530.mp3"
	path := filepath.Join(server.config.Directories.PodcastOutput, name)
	if err := os.WriteFile(path, []byte("mp3 data"), 0o644); err != nil {
		t.Fatalf("写入音频: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/audio/"+name, nil)
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 %d", w.Code)
	}
	if w.Body.String() != "mp3 data" {
		t.Error("音频内容不一致")
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("Content-Type = %s", ct)
	}
}

func TestServeAudioHandlerMissing(t *testing.T) {
	server := testServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/audio/missing.mp3", nil)
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("缺失文件应返回404，实际 %d", w.Code)
	}
}

func TestLatestHandler(t *testing.T) {
	server := testServer(t)

	audioDir := server.config.Directories.PodcastOutput
	for _, name := range []string{
		"culture_art_20250308_080000.mp3",
		"culture_music_20250310_080000.mp3",
	} {
		if err := os.WriteFile(filepath.Join(audioDir, name), []byte("mp3"), 0o644); err != nil {
			t.Fatalf("写入音频: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/latest", nil)
	server.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 %d", w.Code)
	}

	var resp struct {
		Audio []struct {
			File string `json:"file"`
		} `json:"audio"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应: %v", err)
	}
	if len(resp.Audio) != 2 {
		t.Fatalf("音频数量 %d，期望 2", len(resp.Audio))
	}
	// 最新的在前
	if resp.Audio[0].File != "culture_music_20250310_080000.mp3" {
		t.Errorf("最新音频排序错误: %s", resp.Audio[0].File)
	}
}
