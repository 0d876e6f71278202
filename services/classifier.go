package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/inkforge/inkforge-backend/config"
	"github.com/inkforge/inkforge-backend/errs"
	"github.com/inkforge/inkforge-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultEndpoint       = "https://api.openai.com/v1/chat/completions"
	defaultModel          = "gpt-4o-mini"
	defaultTimeoutSeconds = 8
	maxSuggestions        = 5
	excerptRuneLimit      = 150
)

// Verdict is the structured result of classifying one piece of content.
type Verdict struct {
	Sentiment  string `json:"sentiment"`
	Score      int    `json:"score"`
	Analysis   string `json:"analysis"`
	Flagged    bool   `json:"flagged"`
	FlagReason string `json:"flagReason,omitempty"`
}

// ContentAnalyzer is the surface the handlers depend on, so tests can swap in
// a double instead of a live model.
type ContentAnalyzer interface {
	Classify(ctx context.Context, content string) Verdict
	Summarize(ctx context.Context, content string) string
	SuggestImprovements(ctx context.Context, content string) []string
}

// Classifier talks to an OpenAI-compatible chat-completions endpoint. It is
// constructed explicitly and injected; there is no package-level client.
type Classifier struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ ContentAnalyzer = (*Classifier)(nil)

// NewClassifier builds a classifier from configuration. The client timeout
// bounds every upstream call so a hung model can never hang a submission.
func NewClassifier(cfg map[string]string) *Classifier {
	timeout := time.Duration(config.GetInt(cfg, "AI_TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second

	return &Classifier{
		endpoint: config.GetString(cfg, "OPENAI_ENDPOINT", defaultEndpoint),
		model:    config.GetString(cfg, "OPENAI_MODEL", defaultModel),
		apiKey:   config.GetString(cfg, "OPENAI_API_KEY", ""),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.With().Str("service", "classifier").Logger(),
	}
}

const classifySystemPrompt = `You are a content moderation AI. Analyze the given blog content for:
1. Overall sentiment (positive, neutral, negative)
2. Quality score (0-100 based on writing quality, coherence, value)
3. Content appropriateness (flag inappropriate content)
4. Brief analysis summary

Respond with JSON in this exact format:
{
  "sentiment": "positive|neutral|negative",
  "score": number_0_to_100,
  "analysis": "brief analysis summary",
  "flagged": boolean,
  "flagReason": "reason if flagged, null otherwise"
}`

const summarizeSystemPrompt = "Generate a compelling 2-3 sentence excerpt from the given blog content " +
	"that would encourage readers to click and read more. Keep it under 150 characters."

const suggestSystemPrompt = `Analyze the blog content and provide 3-5 specific, actionable suggestions for improvement.
Respond with JSON in this format:
{
  "suggestions": ["suggestion 1", "suggestion 2", "suggestion 3"]
}`

// neutralVerdict is the degrade-gracefully result used whenever the upstream
// model cannot produce a usable verdict. Moderation proceeds on it.
func neutralVerdict() Verdict {
	return Verdict{
		Sentiment: models.SentimentNeutral,
		Score:     50,
		Analysis:  "AI analysis unavailable",
		Flagged:   false,
	}
}

// Classify turns article content into a verdict. It never returns an error:
// any upstream failure, timeout, or malformed response degrades to the
// neutral default so submission is never blocked by the model.
func (c *Classifier) Classify(ctx context.Context, content string) Verdict {
	raw, err := c.chatCompletion(ctx, classifySystemPrompt, content, true)
	if err != nil {
		c.logger.Warn().Err(err).Msg("classification failed, using neutral verdict")
		return neutralVerdict()
	}

	var parsed struct {
		Sentiment  string   `json:"sentiment"`
		Score      *float64 `json:"score"`
		Analysis   string   `json:"analysis"`
		Flagged    bool     `json:"flagged"`
		FlagReason string   `json:"flagReason"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.logger.Warn().Err(errs.ErrMalformedVerdict).Str("raw", raw).
			Msg("model returned unparseable verdict, using neutral verdict")
		return neutralVerdict()
	}

	verdict := Verdict{
		Sentiment: parsed.Sentiment,
		Score:     50,
		Analysis:  parsed.Analysis,
		Flagged:   parsed.Flagged,
	}
	if !models.ValidSentiment(verdict.Sentiment) {
		verdict.Sentiment = models.SentimentNeutral
	}
	if parsed.Score != nil {
		verdict.Score = clampScore(int(*parsed.Score))
	}
	if verdict.Analysis == "" {
		verdict.Analysis = "Content analyzed"
	}
	if verdict.Flagged {
		verdict.FlagReason = parsed.FlagReason
	}

	return verdict
}

// Summarize produces a short promotional excerpt. On any failure it falls
// back to a deterministic truncation of the content itself.
func (c *Classifier) Summarize(ctx context.Context, content string) string {
	excerpt, err := c.chatCompletion(ctx, summarizeSystemPrompt, content, false)
	if err != nil || strings.TrimSpace(excerpt) == "" {
		if err != nil {
			c.logger.Warn().Err(err).Msg("excerpt generation failed, falling back to truncation")
		}
		return TruncateExcerpt(content)
	}
	return excerpt
}

// SuggestImprovements returns up to five actionable suggestions, or an empty
// list when the model cannot be reached. Purely advisory.
func (c *Classifier) SuggestImprovements(ctx context.Context, content string) []string {
	raw, err := c.chatCompletion(ctx, suggestSystemPrompt, content, true)
	if err != nil {
		c.logger.Warn().Err(err).Msg("suggestion generation failed")
		return []string{}
	}

	var parsed struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.logger.Warn().Err(errs.ErrMalformedVerdict).Msg("model returned unparseable suggestions")
		return []string{}
	}

	if len(parsed.Suggestions) > maxSuggestions {
		return parsed.Suggestions[:maxSuggestions]
	}
	if parsed.Suggestions == nil {
		return []string{}
	}
	return parsed.Suggestions
}

// TruncateExcerpt is the deterministic, side-effect-free excerpt fallback:
// the first 150 runes of the content plus an ellipsis.
func TruncateExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptRuneLimit {
		runes = runes[:excerptRuneLimit]
	}
	return string(runes) + "..."
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatCompletion performs one round-trip and returns the assistant message.
func (c *Classifier) chatCompletion(ctx context.Context, systemPrompt, userContent string, jsonMode bool) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	}
	if jsonMode {
		reqBody.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			return "", fmt.Errorf("%w: %v", errs.ErrModelTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", errs.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", errs.ErrRateLimitExceeded
	}
	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: %s: %s", errs.ErrModelUnavailable, resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMalformedVerdict, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", errs.ErrMalformedVerdict)
	}

	return parsed.Choices[0].Message.Content, nil
}
