package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/mcqgen/ent/schema"
)

const (
	tableLLMRequestEvents = "llm_request_events"
	tableGenerationEvents = "generation_events"
)

// Tables returns the event tables derived from the ent schema definitions.
func Tables() []*schema.Table {
	return []*schema.Table{
		tableFor(tableLLMRequestEvents, entschema.LLMRequestEvent{}),
		tableFor(tableGenerationEvents, entschema.GenerationEvent{}),
	}
}

// tableFor builds the SQL table for an ent schema: an auto-increment id,
// then mixin fields, then the schema's own fields and indexes.
func tableFor(name string, s ent.Interface) *schema.Table {
	t := schema.NewTable(name).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	for _, f := range fields {
		t.AddColumn(columnFor(f.Descriptor()))
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		key := d.StorageKey
		if key == "" {
			key = strings.ToLower(name + "_" + strings.Join(d.Fields, "_"))
		}
		t.AddIndex(key, d.Unique, d.Fields)
	}
	return t
}

func columnFor(d *field.Descriptor) *schema.Column {
	col := &schema.Column{
		Name:       d.Name,
		Type:       d.Info.Type,
		Size:       int64(d.Size),
		Unique:     d.Unique,
		Nullable:   d.Optional,
		SchemaType: d.SchemaType,
		Comment:    d.Comment,
	}
	if d.StorageKey != "" {
		col.Name = d.StorageKey
	}
	// Function defaults such as time.Now are applied by the repo on insert.
	switch v := d.Default.(type) {
	case string, bool, int, int64, float64:
		col.Default = v
	}
	return col
}

// migrate creates missing tables and indexes with ent's schema migrator.
func migrate(ctx context.Context, db *sql.DB) error {
	m, err := schema.NewMigrate(entsql.OpenDB(dialect.SQLite, db))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables()...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
