package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library resolves a function call issued by an expert.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary dispatches function calls by name over the given functions.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			d := f.Declaration()
			if d.Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Errorf("unknown function %s", call.Name),
			},
		}
	}
}

// NewDeclarations collects the declarations of the given functions.
func NewDeclarations[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

// Func implements Function from a declaration and a callback.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}
