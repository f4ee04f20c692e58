package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/db/ent/schema/utils"
)

// Run is one batch pipeline execution.
type Run struct{ ent.Schema }

func (Run) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "runs"},
	}
}

func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("input_root").Default(""),
		field.Time("started_at").Default(time.Now).Immutable(),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").
			Validate(utils.EnumValidator(constants.RunStatusStrings()...)),
		field.String("error_message").Optional().Nillable(),
		field.Int("files_scanned").NonNegative().Default(0),
		field.Int("files_failed").NonNegative().Default(0),
		field.Int("units_processed").NonNegative().Default(0),
		field.Int("units_skipped").NonNegative().Default(0),
		field.Int("raw_records").NonNegative().Default(0),
		field.Int("cleaned_records").NonNegative().Default(0),
		field.Int("total_hours").NonNegative().Default(0),
		field.JSON("stats", json.RawMessage{}).Optional(),
	}
}

func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE run -> MANY records; records go with their run
		edge.To("records", CourseRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
		index.Fields("status", "started_at"),
	}
}
