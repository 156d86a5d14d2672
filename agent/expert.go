// Package agent provides the Gemini-backed advisory experts.
//
// Experts produce opaque advisory text. They never write to the ledger, and
// callers must treat any failure here as non-fatal: book-keeping always works
// without credentials or network access.
package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// Expert represents a chat with one carbon-accounting specialist.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send that resolves function calls.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}

		log.Printf("expert %q calls %q", e.Name, part0.FunctionCall.Name)
		fresp := e.Library(ctx, part0.FunctionCall)

		// Ask again with the response until we have a real answer.
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

// Advise starts the chat if needed, sends the prompt and returns the
// expert's answer as plain text.
func (e *Expert) Advise(ctx context.Context, client *genai.Client, prompt string) (string, error) {
	if e.chat == nil {
		if err := e.Start(ctx, client); err != nil {
			return "", fmt.Errorf("starting expert %s: %w", e.Name, err)
		}
	}
	content, err := e.Ask(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	return content.Parts[0].Text, nil
}
