// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CourseRecord is the predicate function for courserecord builders.
type CourseRecord func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)
