package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Client - обертка над OpenAI-совместимым chat-completions API.
// Каждый вызов выполняется ровно один раз, без ретраев: при любой
// ошибке вызывающая сторона обязана деградировать до детерминированного
// шаблонного ответа.
type Client struct {
	api    *openai.Client
	model  string
	logger *logrus.Logger
}

// NewClient создает клиент для внешнего генеративного API
func NewClient(apiKey, baseURL, model string, logger *logrus.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// GenerateSentiment запрашивает у модели анализ настроений по сводке
// гражданских данных. Ответ модели ожидается в виде JSON-объекта,
// допускается обертка в markdown-блок.
func (c *Client) GenerateSentiment(ctx context.Context, d Digest) (*SentimentAnalysis, error) {
	log := c.logger.WithField("method", "GenerateSentiment")
	log.Info("Generating AI sentiment analysis")

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: sentimentSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSentimentPrompt(d),
			},
		},
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: sentiment request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("llm: sentiment response has no choices")
	}

	parsed, err := parseSentimentResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	log.Info("Sentiment analysis generated")
	return parsed, nil
}

// SummarizePDF просит модель подготовить публичную сводку PDF-документа.
// Документ передается в промпте как base64: модель визуально-языковая,
// отдельный парсер PDF не используется.
func (c *Client) SummarizePDF(ctx context.Context, title, reportType, relatedContext string, pdf []byte) (string, error) {
	log := c.logger.WithField("method", "SummarizePDF").WithField("title", title)
	log.Info("Summarizing announcement document")

	prompt := buildSummaryPrompt(title, reportType, relatedContext, base64.StdEncoding.EncodeToString(pdf))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   500,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("llm: summary request failed: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("llm: summary response is empty")
	}

	log.Info("Document summary generated")
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseSentimentResponse извлекает JSON-объект из ответа модели
func parseSentimentResponse(text string) (*SentimentAnalysis, error) {
	raw := extractJSONObject(text)
	if raw == "" {
		return nil, fmt.Errorf("llm: no JSON object in sentiment response")
	}

	var parsed SentimentAnalysis
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("llm: failed to parse sentiment response: %w", err)
	}

	if parsed.Overall == "" {
		parsed.Overall = "Analysis unavailable"
	}
	if parsed.Issues == "" {
		parsed.Issues = "Analysis unavailable"
	}
	if parsed.Ideas == "" {
		parsed.Ideas = "Analysis unavailable"
	}
	if parsed.Events == "" {
		parsed.Events = "Analysis unavailable"
	}
	if parsed.KeyInsights == nil {
		parsed.KeyInsights = []string{}
	}
	return &parsed, nil
}

// extractJSONObject возвращает первый блок {...} из текста, чтобы
// пережить обертку вида ```json ... ```
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return text[start : end+1]
}
