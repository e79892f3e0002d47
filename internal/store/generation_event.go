package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var generationEventColumns = []string{
	"id", "sequence", "timestamp", "batch_id", "topic", "difficulty",
	"requested", "parsed", "degraded", "model", "outcome", "error_message",
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableGenerationEvents).
		Columns(generationEventColumns[1:]...).
		Values(
			seqNum, now(), data.BatchID, data.Topic, data.Difficulty,
			data.Requested, data.Parsed, data.Degraded, data.Model,
			data.Outcome, data.ErrorMessage,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEventRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(generationEventColumns...).
		From(entsql.Table(tableGenerationEvents)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}
	defer rows.Close()

	var out []GenerationEventRecord
	for rows.Next() {
		var rec GenerationEventRecord
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.BatchID, &rec.Topic, &rec.Difficulty,
			&rec.Requested, &rec.Parsed, &rec.Degraded, &rec.Model,
			&rec.Outcome, &rec.ErrorMessage,
		); err != nil {
			return nil, fmt.Errorf("scan generation event: %w", err)
		}
		rec.Timestamp = rec.Timestamp.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
