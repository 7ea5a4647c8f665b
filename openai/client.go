package openai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const systemMessage = "You are a helpful medical/dental exam notes assistant. Answer concisely and use the given structure."

const sourceConstraints = "Constraints:\n- Use only info from SOURCE. Don't invent facts.\n- Use headings and bullet points where appropriate."

type Client struct {
	api            *openai.Client
	Model          string
	MaxSourceChars int
}

func NewClient(apiKey, model string, maxSourceChars int) *Client {
	return &Client{api: openai.NewClient(apiKey), Model: model, MaxSourceChars: maxSourceChars}
}

// BuildMessages assembles the two messages sent for every generation:
// a fixed system persona and a user message combining the editable
// prompt, the source excerpt (truncated to MaxSourceChars) and fixed
// constraints.
func (c *Client) BuildMessages(prompt, source string) []openai.ChatCompletionMessage {
	excerpt := source
	if c.MaxSourceChars > 0 && len(excerpt) > c.MaxSourceChars {
		excerpt = excerpt[:c.MaxSourceChars]
	}
	user := prompt + "\n\nSOURCE:\n" + excerpt + "\n\n" + sourceConstraints
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
}

// GenerateNotes performs one synchronous chat completion and returns
// the first choice's content unmodified. API errors come back verbatim
// so the handler can surface them; there is no retry.
func (c *Client) GenerateNotes(ctx context.Context, prompt, source string, temperature float64) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.Model,
		Temperature: float32(temperature),
		Messages:    c.BuildMessages(prompt, source),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// StreamNotes is the streaming sibling of GenerateNotes; tokens arrive
// on the returned channel, which closes when the stream ends.
func (c *Client) StreamNotes(ctx context.Context, prompt, source string, temperature float64) (<-chan string, error) {
	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       c.Model,
		Temperature: float32(temperature),
		Messages:    c.BuildMessages(prompt, source),
	})
	if err != nil {
		return nil, err
	}

	ch := make(chan string)

	go func() {
		defer stream.Close()
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err != nil {
				break
			}
			if len(resp.Choices) > 0 {
				ch <- resp.Choices[0].Delta.Content
			}
		}
	}()

	return ch, nil
}
