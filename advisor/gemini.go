package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when the configuration names none.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `You are a patient and skilled investment coach guiding a teenage player in an investment simulation game called 'Legacy Guardian'.
Your answers must be professional, friendly, easy to understand, and always in English.
Provide advice based on the game state provided below, in conjunction with the player's questions. Do not give real-world investment advice outside of the game.`

// ErrThrottled is returned when the player asks faster than the coach is
// allowed to call the external service.
var ErrThrottled = errors.New("coach is throttled, try again in a moment")

// Gemini is a Coach that delegates to the Gemini API. Every call is bounded
// by a timeout and throttled, so a slow or unavailable service can never
// stall the game.
type Gemini struct {
	client  *genai.Client
	model   string
	config  *genai.GenerateContentConfig
	timeout time.Duration
	limiter *rate.Limiter
}

// NewGemini wraps a genai client as a Coach. 'perMinute' is the maximum
// sustained number of external calls per minute.
func NewGemini(client *genai.Client, model string, timeout time.Duration, perMinute int) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if perMinute <= 0 {
		perMinute = 10
	}
	return &Gemini{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
		timeout: timeout,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Ask sends the report context and the player's question to the model.
func (g *Gemini) Ask(ctx context.Context, report Report, question string) (string, error) {
	if !g.limiter.Allow() {
		return "", ErrThrottled
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// One chat per question: coaching answers are stateless, the whole game
	// context travels with every call.
	chat, err := g.client.Chats.Create(ctx, g.model, g.config, nil)
	if err != nil {
		return "", fmt.Errorf("cannot create coach chat: %w", err)
	}
	resp, err := chat.Send(ctx,
		&genai.Part{Text: report.Context()},
		&genai.Part{Text: question},
	)
	if err != nil {
		return "", fmt.Errorf("coach call failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from the coach")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
