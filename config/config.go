package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func init() {
	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		log.Printf("警告: 无法加载.env文件: %v", err)
	}
}

// Config 应用配置
type Config struct {
	Server      ServerConfig
	Directories DirectoriesConfig
	Audio       AudioConfig
	Naming      NamingConfig
	TTS         TTSConfig
	OpenAI      OpenAIConfig
	MinIO       MinIOConfig
	Publish     PublishConfig
	Video       VideoConfig
	Cleanup     CleanupConfig
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port     string
	Env      string
	CronSpec string // 每日定时生成的cron表达式
}

// DirectoriesConfig 输出目录配置
type DirectoriesConfig struct {
	PodcastOutput  string
	MetadataOutput string
	ScriptsOutput  string
	VideosOutput   string
	AssetsDir      string
}

// AudioConfig 音频参数配置
type AudioConfig struct {
	DefaultVoice string // 默认发声人
	SpeechRate   string // 语速调整，带符号百分比，如 "+5%"
	SpeechVolume string // 音量调整，带符号分贝，如 "+2dB"
	OutputFormat string // 输出文件扩展名，如 "mp3"
}

// NamingConfig 产物命名配置
type NamingConfig struct {
	// UniqueSuffix 为音频/元数据文件名追加随机后缀，
	// 避免同一秒内两次生成互相覆盖。默认关闭，保持原有命名约定。
	UniqueSuffix bool
}

// TTSConfig 文本转语音配置
type TTSConfig struct {
	Provider  string // "edge", "aliyun", 等
	EdgeTTS   EdgeTTSConfig
	AliyunTTS AliyunTTSConfig
}

// EdgeTTSConfig Edge TTS配置
type EdgeTTSConfig struct {
	OutputFormat string
}

// AliyunTTSConfig 阿里云TTS配置
type AliyunTTSConfig struct {
	AccessKeyID     string
	AccessKeySecret string
	Region          string
}

// OpenAIConfig OpenAI/Deepseek配置（可选的内容润色）
type OpenAIConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Enrich    bool // 是否用AI生成当日正文
}

// MinIOConfig MinIO存储配置
type MinIOConfig struct {
	Endpoint        string
	BucketName      string
	AccessKeyID     string
	SecretAccessKey string
}

// PublishConfig 发布配置
type PublishConfig struct {
	Enabled bool // 生成成功后是否上传到对象存储
}

// VideoConfig 视频号内容配置
type VideoConfig struct {
	MaxDurationSeconds int // 视频号时长上限
	Width              int
	Height             int
}

// CleanupConfig 旧文件清理配置
type CleanupConfig struct {
	RetentionDays int
}

// DefaultConfig 返回内置默认配置
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "3001",
			Env:      "production",
			CronSpec: "0 0 7 * * *",
		},
		Directories: DirectoriesConfig{
			PodcastOutput:  "culture_podcast/audio",
			MetadataOutput: "culture_podcast/metadata",
			ScriptsOutput:  "culture_podcast/scripts",
			VideosOutput:   "weixin_videos",
			AssetsDir:      "video_assets",
		},
		Audio: AudioConfig{
			DefaultVoice: "zh-CN-XiaoxiaoNeural",
			SpeechRate:   "+5%",
			SpeechVolume: "+2dB",
			OutputFormat: "mp3",
		},
		TTS: TTSConfig{
			Provider: "edge",
			EdgeTTS: EdgeTTSConfig{
				OutputFormat: "audio-24khz-48kbitrate-mono-mp3",
			},
			AliyunTTS: AliyunTTSConfig{
				Region: "cn-shanghai",
			},
		},
		OpenAI: OpenAIConfig{
			BaseURL:   "https://api.deepseek.com/v1",
			Model:     "deepseek-chat",
			MaxTokens: 2048,
		},
		MinIO: MinIOConfig{
			Endpoint:        "http://localhost:9000",
			BucketName:      "culture-podcast",
			AccessKeyID:     "minioadmin",
			SecretAccessKey: "minioadmin",
		},
		Video: VideoConfig{
			MaxDurationSeconds: 60,
			Width:              1080,
			Height:             1920,
		},
		Cleanup: CleanupConfig{
			RetentionDays: 30,
		},
	}
}

// LoadConfig 加载配置：内置默认值 + 可选YAML配置文件 + 环境变量覆盖
func LoadConfig() *Config {
	cfg := DefaultConfig()

	// 配置文件路径可通过环境变量指定
	path := getEnvOrDefault("CULTURE_CONFIG", "config_culture.yaml")
	if fc, err := readFileConfig(path); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  配置文件读取失败，使用默认配置: %v", err)
		}
	} else {
		mergeFileConfig(cfg, fc)
	}

	applyEnv(cfg)
	return cfg
}

// fileConfig 是YAML配置文件的结构，全部使用指针字段，
// 只有文件中出现的键才会覆盖默认值。
type fileConfig struct {
	Directories struct {
		PodcastOutput  *string `yaml:"podcast_output"`
		MetadataOutput *string `yaml:"metadata_output"`
		ScriptsOutput  *string `yaml:"scripts_output"`
		VideosOutput   *string `yaml:"videos_output"`
		AssetsDir      *string `yaml:"assets_dir"`
	} `yaml:"directories"`
	Audio struct {
		DefaultVoice *string `yaml:"default_voice"`
		SpeechRate   *string `yaml:"speech_rate"`
		SpeechVolume *string `yaml:"speech_volume"`
		OutputFormat *string `yaml:"output_format"`
	} `yaml:"audio"`
}

// readFileConfig 读取并解析YAML配置文件
func readFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// mergeFileConfig 将文件配置逐字段合并到默认配置上
func mergeFileConfig(cfg *Config, fc *fileConfig) {
	setIf(&cfg.Directories.PodcastOutput, fc.Directories.PodcastOutput)
	setIf(&cfg.Directories.MetadataOutput, fc.Directories.MetadataOutput)
	setIf(&cfg.Directories.ScriptsOutput, fc.Directories.ScriptsOutput)
	setIf(&cfg.Directories.VideosOutput, fc.Directories.VideosOutput)
	setIf(&cfg.Directories.AssetsDir, fc.Directories.AssetsDir)
	setIf(&cfg.Audio.DefaultVoice, fc.Audio.DefaultVoice)
	setIf(&cfg.Audio.SpeechRate, fc.Audio.SpeechRate)
	setIf(&cfg.Audio.SpeechVolume, fc.Audio.SpeechVolume)
	setIf(&cfg.Audio.OutputFormat, fc.Audio.OutputFormat)
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// applyEnv 用环境变量覆盖配置
func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnvOrDefault("APP_PORT", cfg.Server.Port)
	cfg.Server.Env = getEnvOrDefault("CULTURE_ENV", cfg.Server.Env)
	cfg.Server.CronSpec = getEnvOrDefault("GENERATE_CRON", cfg.Server.CronSpec)

	cfg.Audio.DefaultVoice = getEnvOrDefault("CULTURE_VOICE", cfg.Audio.DefaultVoice)
	cfg.Audio.SpeechRate = getEnvOrDefault("CULTURE_SPEECH_RATE", cfg.Audio.SpeechRate)
	cfg.Audio.SpeechVolume = getEnvOrDefault("CULTURE_SPEECH_VOLUME", cfg.Audio.SpeechVolume)

	cfg.Naming.UniqueSuffix = getEnvBoolOrDefault("CULTURE_UNIQUE_SUFFIX", cfg.Naming.UniqueSuffix)

	cfg.TTS.Provider = getEnvOrDefault("TTS_PROVIDER", cfg.TTS.Provider)
	cfg.TTS.EdgeTTS.OutputFormat = getEnvOrDefault("EDGE_TTS_FORMAT", cfg.TTS.EdgeTTS.OutputFormat)
	cfg.TTS.AliyunTTS.AccessKeyID = getEnvOrDefault("ALIYUN_ACCESS_KEY_ID", cfg.TTS.AliyunTTS.AccessKeyID)
	cfg.TTS.AliyunTTS.AccessKeySecret = getEnvOrDefault("ALIYUN_ACCESS_KEY_SECRET", cfg.TTS.AliyunTTS.AccessKeySecret)
	cfg.TTS.AliyunTTS.Region = getEnvOrDefault("ALIYUN_REGION", cfg.TTS.AliyunTTS.Region)

	cfg.OpenAI.BaseURL = getEnvOrDefault("OPENAI_BASE_URL", cfg.OpenAI.BaseURL)
	cfg.OpenAI.APIKey = getEnvOrDefault("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.Model = getEnvOrDefault("OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.MaxTokens = getEnvIntOrDefault("OPENAI_MAX_TOKENS", cfg.OpenAI.MaxTokens)
	cfg.OpenAI.Enrich = getEnvBoolOrDefault("AI_ENRICH", cfg.OpenAI.Enrich)

	cfg.MinIO.Endpoint = getEnvOrDefault("MINIO_ENDPOINT", cfg.MinIO.Endpoint)
	cfg.MinIO.BucketName = getEnvOrDefault("MINIO_BUCKET_NAME", cfg.MinIO.BucketName)
	cfg.MinIO.AccessKeyID = getEnvOrDefault("MINIO_ACCESS_KEY", cfg.MinIO.AccessKeyID)
	cfg.MinIO.SecretAccessKey = getEnvOrDefault("MINIO_SECRET_KEY", cfg.MinIO.SecretAccessKey)

	cfg.Publish.Enabled = getEnvBoolOrDefault("PUBLISH_ENABLED", cfg.Publish.Enabled)

	cfg.Cleanup.RetentionDays = getEnvIntOrDefault("CLEANUP_RETENTION_DAYS", cfg.Cleanup.RetentionDays)
}

// getEnvOrDefault 获取环境变量或默认值
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvIntOrDefault 获取环境变量(整数)或默认值
func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvBoolOrDefault 获取环境变量(布尔)或默认值
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}
