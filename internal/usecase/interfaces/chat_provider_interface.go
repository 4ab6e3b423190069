package interfaces

import "context"

// IChatProvider answers a question using a remote language model.
// The credential is checked per call, so a provider can be built without one.
type IChatProvider interface {
	Ask(ctx context.Context, systemPrompt, question string) (string, error)
}
