package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent records the outcome of one quiz generation request.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			Comment("Batch UUID, assigned before the provider call"),
		field.String("topic"),
		field.String("difficulty").
			Comment("Easy, Medium or Hard"),
		field.Int("requested").
			Comment("Question count asked for"),
		field.Int("parsed").
			Default(0).
			Comment("Question blocks found in the reply"),
		field.Int("degraded").
			Default(0).
			Comment("Parsed questions with at least one issue"),
		field.String("model").
			Default(""),
		field.String("outcome").
			Comment("ok, unparseable or failed"),
		field.String("error_message").
			Default(""),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("outcome"),
	}
}
