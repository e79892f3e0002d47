package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{tableLLMRequestEvents, tableGenerationEvents, "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestTablesFollowEntSchema(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 2)

	llm := tables[0]
	assert.Equal(t, tableLLMRequestEvents, llm.Name)
	require.Len(t, llm.PrimaryKey, 1)
	assert.True(t, llm.PrimaryKey[0].Increment)

	seq, ok := llm.Column("sequence")
	require.True(t, ok, "mixin fields come first")
	assert.True(t, seq.Unique)
	assert.Equal(t, "sequence", llm.Columns[1].Name)
	assert.Equal(t, "timestamp", llm.Columns[2].Name)

	tokens, ok := llm.Column("input_tokens")
	require.True(t, ok)
	assert.Equal(t, 0, tokens.Default)

	ts, ok := llm.Column("timestamp")
	require.True(t, ok)
	assert.Nil(t, ts.Default, "function defaults are not column defaults")

	_, ok = llm.Index("llm_request_events_purpose")
	assert.True(t, ok)

	gen := tables[1]
	assert.Equal(t, tableGenerationEvents, gen.Name)
	_, ok = gen.Index("generation_events_outcome")
	assert.True(t, ok)
	_, ok = gen.Index("generation_events_timestamp")
	assert.True(t, ok)
}

func TestMigrationCreatesIndexes(t *testing.T) {
	s := openTestStore(t)

	for _, index := range []string{"llm_request_events_purpose", "generation_events_outcome"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='index' AND name=?", index,
		).Scan(&name)
		if err != nil {
			t.Errorf("index %s: %v", index, err)
		}
	}
}

func TestTimestampRangeFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
		BatchID: "b1", Topic: "Go", Difficulty: "Easy", Requested: 1, Outcome: "ok",
	}))

	gens, err := repo.QueryGenerations(ctx, QueryOpts{From: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Len(t, gens, 1)

	gens, err = repo.QueryGenerations(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, gens)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendGeneration(ctx, GenerationEventData{
		BatchID: "b1", Topic: "Go", Difficulty: "Easy", Requested: 1, Outcome: "ok",
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	gens, err := s.EventRepo().QueryGenerations(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, gens, 1)

	// The sequence continues rather than restarting.
	require.NoError(t, s.EventRepo().AppendGeneration(ctx, GenerationEventData{
		BatchID: "b2", Topic: "Go", Difficulty: "Easy", Requested: 1, Outcome: "ok",
	}))
	gens, err = s.EventRepo().QueryGenerations(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, gens, 2)
	assert.Greater(t, gens[0].Sequence, gens[1].Sequence)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEvents_AppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "mcq-gen",
		InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nGenerate", ResponseBody: "Question 1: ...",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "mcq-gen",
		LatencyMs: 100, Success: false, ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.True(t, events[1].Success)
	assert.WithinDuration(t, time.Now(), events[1].Timestamp, time.Minute)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: events[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, events[0].ID, after[0].ID)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Question 1: ...", got.ResponseBody)
	assert.Equal(t, "[user]\nGenerate", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "mcq-gen", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "mcq-gen", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o", Purpose: "other", InputTokens: 5, OutputTokens: 5, LatencyMs: 50, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{
		Purpose: "mcq-gen", Calls: 2, InputTokens: 40, OutputTokens: 60, AvgLatencyMs: 200,
	}, byPurpose[0])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, LLMModelUsage{Model: "gpt-4o-mini", Calls: 2, InputTokens: 40, OutputTokens: 60}, byModel[0])
}

func TestGenerationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
		BatchID: "b1", Topic: "Photosynthesis", Difficulty: "Easy",
		Requested: 3, Parsed: 3, Degraded: 1, Model: "mock", Outcome: "ok",
	}))
	require.NoError(t, repo.AppendGeneration(ctx, GenerationEventData{
		BatchID: "b2", Topic: "Rust", Difficulty: "Hard",
		Requested: 5, Model: "mock", Outcome: "failed", ErrorMessage: "unavailable",
	}))

	gens, err := repo.QueryGenerations(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, gens, 2)
	assert.Equal(t, "b2", gens[0].BatchID)
	assert.Equal(t, "failed", gens[0].Outcome)
	assert.Equal(t, "unavailable", gens[0].ErrorMessage)
	assert.Equal(t, 1, gens[1].Degraded)

	future, err := repo.QueryGenerations(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "quiz.db")
		t.Setenv("MCQGEN_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("MCQGEN_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "mcqgen", "mcqgen.db"), got)
	})
}
