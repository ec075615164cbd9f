// Package gemini wraps the Google generative-language API behind a single
// Generate operation. The provider response is decoded into a local model
// once, at this boundary; nothing above it inspects SDK types.
package gemini

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/blisterdriver/ai-chat-v1/internal/types"
)

// Request is one outbound generation call: the verbatim conversation history
// plus the selected preset's instruction, model, and tuning values.
type Request struct {
	Model             string
	SystemInstruction string
	History           []types.Turn
	Temperature       float32
	TopP              float32
	TopK              float32
	MaxOutputTokens   int32
}

// Candidate is one alternative completion, as ordered text parts. A blocked
// or contentless candidate decodes to an empty Parts slice.
type Candidate struct {
	Parts []string
}

// Response is the decoded provider result.
type Response struct {
	Candidates []Candidate
	// FeedbackReason is the prompt-level diagnostic the provider attached
	// (block reason), or "" when none was supplied.
	FeedbackReason string
}

// FirstText returns the first candidate's first part, which is the payload
// the caller relays. ok is false when the response structurally lacks one.
func (r *Response) FirstText() (string, bool) {
	if len(r.Candidates) > 0 && len(r.Candidates[0].Parts) > 0 {
		return r.Candidates[0].Parts[0], true
	}
	return "", false
}

// Generator issues exactly one generation call per Request. It exists so the
// HTTP handler can be exercised against a recording stub.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Client is the genai-backed Generator. The underlying SDK client is built
// lazily on first use so the process can start without a credential.
type Client struct {
	apiKey string

	mu     sync.Mutex
	client *genai.Client
}

func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	cl, err := c.sdk(ctx)
	if err != nil {
		return nil, err
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: req.SystemInstruction}}},
		Temperature:       genai.Ptr(req.Temperature),
		TopP:              genai.Ptr(req.TopP),
		TopK:              genai.Ptr(req.TopK),
		MaxOutputTokens:   req.MaxOutputTokens,
	}
	res, err := cl.Models.GenerateContent(ctx, req.Model, toContents(req.History), cfg)
	if err != nil {
		return nil, err
	}
	return decodeResponse(res), nil
}

func (c *Client) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	cl, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey})
	if err != nil {
		return nil, err
	}
	c.client = cl
	return cl, nil
}

// toContents converts history turns to SDK contents, preserving turn and
// part order. Roles are normalized to the provider's user/model pair.
func toContents(history []types.Turn) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, t := range history {
		parts := make([]*genai.Part, 0, len(t.Parts))
		for _, p := range t.Parts {
			parts = append(parts, &genai.Part{Text: p.Text})
		}
		out = append(out, &genai.Content{Role: toRole(t.Role), Parts: parts})
	}
	return out
}

func toRole(s string) string {
	switch strings.ToLower(s) {
	case "assistant", "model", "ai":
		return string(genai.RoleModel)
	default:
		return string(genai.RoleUser)
	}
}

func decodeResponse(res *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if res == nil {
		return out
	}
	for _, cand := range res.Candidates {
		var c Candidate
		if cand != nil && cand.Content != nil {
			for _, p := range cand.Content.Parts {
				if p == nil {
					continue
				}
				c.Parts = append(c.Parts, p.Text)
			}
		}
		out.Candidates = append(out.Candidates, c)
	}
	if pf := res.PromptFeedback; pf != nil {
		reason := string(pf.BlockReason)
		if pf.BlockReasonMessage != "" {
			if reason != "" {
				reason += ": "
			}
			reason += pf.BlockReasonMessage
		}
		out.FeedbackReason = reason
	}
	return out
}
