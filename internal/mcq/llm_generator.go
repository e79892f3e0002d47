package mcq

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/store"
)

// PurposeGenerate labels generation calls in the LLM event log.
const PurposeGenerate = "mcq-gen"

// Generation outcomes recorded in the event log.
const (
	OutcomeOK          = "ok"
	OutcomeUnparseable = "unparseable"
	OutcomeFailed      = "failed"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider  llm.Provider
	config    Config
	eventRepo store.EventRepo
	now       func() time.Time
}

// GeneratorOption customizes an LLMGenerator.
type GeneratorOption func(*LLMGenerator)

// WithEventRepo records every generation outcome in repo.
func WithEventRepo(repo store.EventRepo) GeneratorOption {
	return func(g *LLMGenerator) { g.eventRepo = repo }
}

// WithClock overrides the clock used for the prompt nonce and timestamps.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *LLMGenerator) { g.now = now }
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, opts ...GeneratorOption) *LLMGenerator {
	g := &LLMGenerator{provider: provider, config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a batch for req. See Generator for the error contract.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*Batch, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, PurposeGenerate)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	now := g.now()
	batch := &Batch{
		ID:        uuid.NewString(),
		Request:   req,
		Model:     g.provider.ModelID(),
		CreatedAt: now,
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(req, strconv.FormatInt(now.Unix(), 10))},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		gerr := &GenerationError{Model: g.provider.ModelID(), Err: err}
		g.record(ctx, batch, OutcomeFailed, gerr)
		return nil, gerr
	}

	batch.Raw = resp.Text
	if resp.Model != "" {
		batch.Model = resp.Model
	}

	questions, err := Parse(resp.Text)
	if err != nil {
		g.record(ctx, batch, OutcomeUnparseable, err)
		return batch, err
	}

	batch.Questions = questions
	batch.Issues = Diagnose(questions, g.config.Checks)
	g.record(ctx, batch, OutcomeOK, nil)

	return batch, nil
}

// record appends a generation event. Failures are reported but never fail
// the generation itself.
func (g *LLMGenerator) record(ctx context.Context, batch *Batch, outcome string, genErr error) {
	if g.eventRepo == nil {
		return
	}

	data := store.GenerationEventData{
		BatchID:    batch.ID,
		Topic:      batch.Request.Topic,
		Difficulty: string(batch.Request.Difficulty),
		Requested:  batch.Request.Count,
		Parsed:     len(batch.Questions),
		Degraded:   DegradedCount(batch.Issues),
		Model:      batch.Model,
		Outcome:    outcome,
	}
	if genErr != nil {
		data.ErrorMessage = genErr.Error()
	}

	if err := g.eventRepo.AppendGeneration(context.WithoutCancel(ctx), data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation event: %v\n", err)
	}
}
