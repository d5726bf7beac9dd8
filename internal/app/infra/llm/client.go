package llm

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"lop/dpboard/internal/app/pkg/errorx"
)

// Client Chat Completions 客户端封装
// base_url 可覆盖为任意 OpenAI 兼容端点
type Client struct {
	cli         openai.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewClient 创建 LLM 客户端
func NewClient(apiKey, baseURL, model string, maxTokens int64, temperature float64) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		cli:         openai.NewClient(opts...),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Complete 发送一轮对话，返回首个 choice 的文本内容
// 低 temperature + 有界 max_tokens，保证输出简短稳定
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	completion, err := c.cli.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Model:       shared.ChatModel(c.model),
		MaxTokens:   openai.Int(c.maxTokens),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errorx.ErrLLMUnavailable, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", errorx.ErrLLMResponseInvalid)
	}

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("%w: empty message content", errorx.ErrLLMResponseInvalid)
	}

	return content, nil
}
