package entity

// Bucket is one row of a distribution table.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AggregateStatistics summarizes a cleaned record set. Only records with
// positive hours contribute.
type AggregateStatistics struct {
	TotalCourses        int      `json:"total_courses"`
	TotalHours          int      `json:"total_hours"`
	DistinctInstructors int      `json:"distinct_instructors"`
	DistinctCategories  int      `json:"distinct_categories"`
	DistinctWeekTokens  int      `json:"distinct_week_tokens"`
	Instructors         []Bucket `json:"instructors"`
	Categories          []Bucket `json:"categories"`
	Weeks               []Bucket `json:"weeks"`
}
