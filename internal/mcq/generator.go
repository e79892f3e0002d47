package mcq

import "context"

// Generator produces a batch of questions for a request.
type Generator interface {
	// Generate validates the request, makes exactly one call to the
	// generation service and parses the result.
	//
	// Errors: a validation sentinel (ErrEmptyTopic, ...) when the request is
	// rejected before any call; *GenerationError when the service call
	// fails; ErrUnparseable when the response has no question blocks, in
	// which case the returned batch is non-nil and carries Raw.
	Generate(ctx context.Context, req Request) (*Batch, error)
}
