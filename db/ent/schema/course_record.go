package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// CourseRecord is one cleaned course row produced by a run.
type CourseRecord struct{ ent.Schema }

func (CourseRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "course_records"},
	}
}

func (CourseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}),
		// position keeps the cleaned order, which is the dedupe order
		field.Int("position").NonNegative(),
		field.String("course_name").NotEmpty(),
		field.String("instructor"),
		field.Int("hours").NonNegative(),
		field.String("category"),
		field.String("week").Default(""),
		field.String("location").Default(""),
		field.String("section").Default(""),
		field.String("time_period").Default(""),
		field.String("note").Default(""),
		field.String("source_file"),
		field.String("sheet_or_page"),
		field.String("source_locator"),
		field.String("source_text").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (CourseRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("records").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (CourseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "position").Unique(),
		index.Fields("instructor"),
	}
}
