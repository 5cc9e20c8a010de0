package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"culture-podcast/config"
	"culture-podcast/internal/ai"
	"culture-podcast/internal/artifact"
	"culture-podcast/internal/cleanup"
	"culture-podcast/internal/content"
	"culture-podcast/internal/models"
	"culture-podcast/internal/podcast"
	"culture-podcast/internal/storage"
	"culture-podcast/internal/tts"
	"culture-podcast/internal/video"
)

// Server 是API服务器结构
type Server struct {
	config        *config.Config
	router        *gin.Engine
	generator     *podcast.Generator
	minioClient   *storage.MinioClient
	videoGen      *video.Generator
	isProcessing  bool
	lastProcessed time.Time
}

// NewServer 创建一个新的API服务器
func NewServer(cfg *config.Config) (*Server, error) {
	// 创建TTS服务
	ttsService, err := tts.Factory(&cfg.TTS)
	if err != nil {
		return nil, err
	}

	// 可选的AI内容润色
	var enricher content.Enricher
	if cfg.OpenAI.Enrich && cfg.OpenAI.APIKey != "" {
		enricher = ai.NewClient(&cfg.OpenAI)
	}

	provider := content.NewProvider(enricher)
	writer := artifact.NewWriter(cfg.Directories, cfg.Naming)

	generator, err := podcast.NewGenerator(cfg, provider, ttsService, writer)
	if err != nil {
		return nil, err
	}

	// 启用发布时创建MinIO客户端
	var minioClient *storage.MinioClient
	if cfg.Publish.Enabled {
		minioClient, err = storage.NewMinioClient(&cfg.MinIO)
		if err != nil {
			return nil, err
		}
	}

	videoGen := video.NewGenerator(cfg.Video, cfg.Directories.VideosOutput, cfg.Directories.AssetsDir)

	// 创建Gin路由
	router := gin.Default()

	// 启用CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	server := &Server{
		config:      cfg,
		router:      router,
		generator:   generator,
		minioClient: minioClient,
		videoGen:    videoGen,
	}

	server.registerRoutes()
	return server, nil
}

// registerRoutes 注册API路由
func (s *Server) registerRoutes() {
	// 健康检查
	s.router.GET("/health", s.healthHandler)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		// 生成播客
		v1.POST("/generate", s.generateHandler)

		// 查看主题列表
		v1.GET("/themes", s.themesHandler)

		// 查看最新播客
		v1.GET("/latest", s.latestHandler)

		// 获取处理状态
		v1.GET("/status", s.statusHandler)

		// 生成视频号内容
		v1.POST("/video", s.videoHandler)

		// 清理旧文件
		v1.POST("/cleanup", s.cleanupHandler)
	}

	// 提供音频文件
	s.router.GET("/audio/:filename", s.serveAudioHandler)
}

// Run 启动API服务器
func (s *Server) Run() error {
	return s.router.Run(":" + s.config.Server.Port)
}

// GenerateDaily 执行一次生成，供定时任务调用
func (s *Server) GenerateDaily(theme string) {
	s.runGeneration(theme)
}

// healthHandler 健康检查处理程序
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// themesHandler 返回全部合法主题
func (s *Server) themesHandler(c *gin.Context) {
	themes := make([]gin.H, 0, len(content.Themes()))
	for _, theme := range content.Themes() {
		themes = append(themes, gin.H{
			"theme":    theme,
			"theme_cn": content.ThemeCN(theme),
		})
	}
	c.JSON(http.StatusOK, gin.H{"themes": themes})
}

// generateHandler 生成播客
func (s *Server) generateHandler(c *gin.Context) {
	var req struct {
		Theme string `json:"theme"`
		Test  bool   `json:"test"` // 测试模式，不生成音频
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的请求参数",
		})
		return
	}

	// 主题校验在进入流水线之前完成
	if req.Theme != "" && !content.ValidTheme(req.Theme) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("无效主题，可选: %s", strings.Join(content.Themes(), ", ")),
		})
		return
	}

	// 测试模式：只返回当日内容预览
	if req.Test {
		record, err := content.DailyContent(req.Theme, time.Now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"theme":           record.Theme,
			"theme_cn":        record.ThemeCN,
			"title":           record.Content.Title,
			"content_preview": preview(record.Content.Body, 300),
			"keywords":        record.Content.Keywords,
		})
		return
	}

	if s.isProcessing {
		c.JSON(http.StatusConflict, gin.H{
			"error": "已有生成任务在执行",
		})
		return
	}

	// 在后台处理
	go s.runGeneration(req.Theme)

	c.JSON(http.StatusOK, gin.H{
		"message": "生成已开始",
		"theme":   req.Theme,
	})
}

// runGeneration 执行一次生成并按配置发布
func (s *Server) runGeneration(theme string) {
	s.isProcessing = true
	defer func() {
		s.isProcessing = false
		s.lastProcessed = time.Now()
	}()

	ctx := context.Background()
	result := s.generator.Generate(ctx, theme)
	if result == nil {
		log.Println("❌ 播客生成失败")
		return
	}

	log.Printf("🎉 播客生成完成: %s", result.AudioPath)

	// 发布是生成成功后的尽力而为步骤，失败不影响本地产物
	if s.minioClient != nil {
		audioURL, err := s.minioClient.PublishGeneration(ctx, result)
		if err != nil {
			log.Printf("发布到对象存储失败: %v", err)
			return
		}
		log.Printf("📡 已发布: %s", audioURL)
	}
}

// statusHandler 获取处理状态
func (s *Server) statusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"isProcessing":  s.isProcessing,
		"lastProcessed": s.lastProcessed.Format(time.RFC3339),
	})
}

// latestHandler 查看最新的播客文件和元数据
func (s *Server) latestHandler(c *gin.Context) {
	audioDir := s.config.Directories.PodcastOutput
	metaDir := s.config.Directories.MetadataOutput

	audios := listNewest(audioDir, ".mp3", 5)
	audioInfos := make([]gin.H, 0, len(audios))
	for _, name := range audios {
		info, err := os.Stat(filepath.Join(audioDir, name))
		if err != nil {
			continue
		}
		audioInfos = append(audioInfos, gin.H{
			"file":    name,
			"size_mb": float64(info.Size()) / 1024 / 1024,
		})
	}

	var latestMeta *models.Metadata
	if metas := listNewest(metaDir, ".json", 1); len(metas) > 0 {
		data, err := os.ReadFile(filepath.Join(metaDir, metas[0]))
		if err == nil {
			var m models.Metadata
			if json.Unmarshal(data, &m) == nil {
				latestMeta = &m
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"audio":    audioInfos,
		"metadata": latestMeta,
	})
}

// videoHandler 用最新播客生成视频号内容
func (s *Server) videoHandler(c *gin.Context) {
	var req struct {
		Audio string `json:"audio"`
		Image string `json:"image"`
	}
	// 请求体可为空，默认用最新音频
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	var videoPath string
	var err error
	if req.Audio != "" {
		videoPath, err = s.videoGen.CreateSimpleVideo(ctx, req.Audio, req.Image)
	} else {
		videoPath, err = s.videoGen.CreateFromLatest(ctx, s.config.Directories.PodcastOutput)
	}
	if err != nil {
		log.Printf("视频生成失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "视频生成失败",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videoPath": videoPath,
	})
}

// cleanupHandler 清理旧文件
func (s *Server) cleanupHandler(c *gin.Context) {
	deleted := cleanup.Sweep([]string{
		s.config.Directories.PodcastOutput,
		s.config.Directories.VideosOutput,
	}, s.config.Cleanup.RetentionDays)

	c.JSON(http.StatusOK, gin.H{
		"message": "清理完成",
		"deleted": deleted,
	})
}

// serveAudioHandler 提供本地音频文件
func (s *Server) serveAudioHandler(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || filename != filepath.Base(filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "无效的文件名",
		})
		return
	}

	path := filepath.Join(s.config.Directories.PodcastOutput, filename)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "文件不存在",
		})
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.Header("Content-Disposition", "inline")
	c.File(path)
}

// listNewest 返回目录下按文件名倒序排列的前n个指定扩展名文件
func listNewest(dir, ext string, n int) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ext) {
			names = append(names, entry.Name())
		}
	}

	// 文件名带时间戳，倒序即最新在前
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// preview 截断文本并加省略号
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
