package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/orderlex/orderlex/internal/model"
	"github.com/orderlex/orderlex/internal/worker"
)

// OpenAIAnnotator tags prompts with a chat model returning the
// annotation as strict JSON. It exists for deployments that want a
// full statistical tagger behind the same Annotator seam; the prose
// annotator remains the default.
type OpenAIAnnotator struct {
	client  *openai.Client
	cfg     model.AnnotatorConfig
	limiter *worker.Limiter
}

const annotatorSystemPrompt = `You are a linguistic annotator. Given a sentence, respond with ONLY a JSON object, no prose, of the shape:
{
  "tokens": [{"text": "...", "lemma": "...", "pos": "...", "tag": "...", "dep": "...", "shape": "...", "is_alpha": true, "is_stop": false, "is_oov": false}],
  "arcs": [{"start": 0, "end": 2, "label": "cc", "dir": "right"}],
  "entities": [{"text": "...", "label": "DATE"}]
}
Rules:
- pos uses universal tags (NOUN, PROPN, VERB, ADJ, CCONJ, PUNCT, ADP, DET, NUM, ...); tag uses Penn Treebank tags.
- dep must be "cc" for coordinating conjunctions, "punct" for punctuation, otherwise the usual dependency label.
- arcs lists dependency arcs by token index; coordination arcs must carry label "cc".
- entities must include every DATE and CARDINAL span.
- is_oov is true only for tokens that are not real words.`

// NewOpenAIAnnotator creates the remote annotator.
func NewOpenAIAnnotator(cfg model.AnnotatorConfig) (*OpenAIAnnotator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIAnnotator{
		client:  openai.NewClientWithConfig(clientConfig),
		cfg:     cfg,
		limiter: worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
	}, nil
}

// Name returns the provider name
func (a *OpenAIAnnotator) Name() string {
	return "openai"
}

// Annotate tags the text remotely. Calls are rate limited per provider.
func (a *OpenAIAnnotator) Annotate(ctx context.Context, text string) (*model.Annotation, error) {
	if err := a.limiter.Wait(ctx, a.Name()); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	timeout := a.cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatModel := a.cfg.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	resp, err := a.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: annotatorSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0, // deterministic tagging
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	payload := stripCodeFence(resp.Choices[0].Message.Content)

	var annotation model.Annotation
	if err := json.Unmarshal([]byte(payload), &annotation); err != nil {
		return nil, fmt.Errorf("parse annotation: %w", err)
	}
	if len(annotation.Tokens) == 0 {
		return nil, fmt.Errorf("annotation has no tokens")
	}

	return &annotation, nil
}

// stripCodeFence removes a surrounding ```json fence if the model added one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
