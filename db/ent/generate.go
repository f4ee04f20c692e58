//go:build ignore

package main

import (
	"log/slog"
	"os"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run with: go run ./db/ent/generate.go
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/joseph-ayodele/course-stats/gen/ent",
			Schema:  "github.com/joseph-ayodele/course-stats/db/ent/schema",
		},
	)
	if err != nil {
		slog.Error("ent.generate.failed", "err", err)
		os.Exit(1)
	}
}
