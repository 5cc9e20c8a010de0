package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"culture-podcast/config"
)

// CultureBodyPrompt 生成文化正文的系统提示词
const CultureBodyPrompt = `你是一档名为《每日文化》的中文播客的撰稿人。
请根据给定的主题、标题和关键词，写一段300到500字的播客正文。
要求：口语化、适合朗读、内容准确、不使用列表和标题，直接输出正文。`

// Client 是AI接口的客户端
type Client struct {
	client    *openai.Client
	config    *config.OpenAIConfig
	maxTokens int
}

// NewClient 创建一个新的AI客户端
func NewClient(cfg *config.OpenAIConfig) *Client {
	// 创建OpenAI配置
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	// 创建客户端
	client := openai.NewClientWithConfig(clientConfig)

	return &Client{
		client:    client,
		config:    cfg,
		maxTokens: cfg.MaxTokens,
	}
}

// GenerateCultureBody 为当日主题生成播客正文
func (c *Client) GenerateCultureBody(ctx context.Context, themeCN, title string, keywords []string) (string, error) {
	userContent := fmt.Sprintf("主题：%s\n标题：%s\n关键词：%s",
		themeCN, title, strings.Join(keywords, "、"))

	// 创建聊天请求
	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: CultureBodyPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userContent,
			},
		},
		MaxTokens: c.maxTokens,
	}

	// 发送请求
	body, err := c.generateText(ctx, req)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(body), nil
}

// generateText 发送AI请求并获取生成的文本
func (c *Client) generateText(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	log.Printf("生成AI内容，模型: %s", req.Model)

	// 添加重试逻辑
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		// 添加超时
		timeoutCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		// 发送请求
		resp, err := c.client.CreateChatCompletion(timeoutCtx, req)
		if err != nil {
			// 检查是否是可重试的错误
			if i < maxRetries-1 {
				log.Printf("AI请求失败，正在重试 (%d/%d): %v", i+1, maxRetries, err)
				time.Sleep(time.Duration(i+1) * 2 * time.Second) // 指数退避
				continue
			}
			return "", fmt.Errorf("生成AI内容失败: %w", err)
		}

		// 检查响应是否有效
		if len(resp.Choices) == 0 {
			if i < maxRetries-1 {
				log.Printf("AI响应无效，正在重试 (%d/%d)", i+1, maxRetries)
				time.Sleep(time.Duration(i+1) * 2 * time.Second)
				continue
			}
			return "", fmt.Errorf("AI响应中没有内容")
		}

		log.Printf("AI内容生成成功，使用tokens: %d", resp.Usage.TotalTokens)
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("超过最大重试次数")
}
