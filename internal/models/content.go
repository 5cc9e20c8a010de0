package models

// Content 表示一条文化内容（标题、正文、关键词等）
type Content struct {
	Title           string   `json:"title"`
	Body            string   `json:"content"`
	Keywords        []string `json:"keywords"`
	DurationMinutes int      `json:"duration"`
	Difficulty      string   `json:"difficulty"`
}

// ContentRecord 表示某个主题当日的完整内容包
type ContentRecord struct {
	Theme   string  `json:"theme"`
	ThemeCN string  `json:"theme_cn"`
	Content Content `json:"content"`
}

// GenerationResult 表示一次播客生成的结果
type GenerationResult struct {
	Success      bool    `json:"success"`
	Theme        string  `json:"theme"`
	ThemeCN      string  `json:"theme_cn"`
	Title        string  `json:"title"`
	AudioPath    string  `json:"audio_path"`
	MetadataPath string  `json:"metadata_path"`
	ScriptPath   string  `json:"script_path"`
	FileSizeMB   float64 `json:"file_size_mb"`
}

// RunStats 表示一次生成的运行时测量值
type RunStats struct {
	AudioSizeMB              float64 `json:"audio_size_mb"`
	ScriptLength             int     `json:"script_length"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
	Difficulty               string  `json:"difficulty"`
}

// Metadata 是随音频/脚本一起落盘的JSON元数据记录
type Metadata struct {
	AudioSizeMB              float64  `json:"audio_size_mb"`
	ScriptLength             int      `json:"script_length"`
	EstimatedDurationMinutes int      `json:"estimated_duration_minutes"`
	Difficulty               string   `json:"difficulty"`
	Theme                    string   `json:"theme"`
	ThemeCN                  string   `json:"theme_cn"`
	Title                    string   `json:"title"`
	ContentPreview           string   `json:"content_preview"`
	Keywords                 []string `json:"keywords"`
	ScriptPreview            string   `json:"script_preview"`
	AudioFile                string   `json:"audio_file"`
	AudioPath                string   `json:"audio_path"`
	GeneratedAt              string   `json:"generated_at"`
	Version                  string   `json:"version"`
}
