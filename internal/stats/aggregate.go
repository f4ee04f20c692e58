// Package stats computes summary statistics over cleaned course records.
package stats

import (
	"sort"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/weeks"
)

// Aggregate recomputes statistics from scratch. Records without positive
// hours are ignored entirely.
func Aggregate(records []entity.CleanedCourseRecord) entity.AggregateStatistics {
	var (
		out         entity.AggregateStatistics
		instructors = newCounter()
		categories  = newCounter()
		weekTokens  = newCounter()
		named       = make(map[string]struct{})
	)

	for _, r := range records {
		if r.Hours <= 0 {
			continue
		}
		out.TotalCourses++
		out.TotalHours += r.Hours

		instructors.add(r.Instructor)
		if countsAsInstructor(r.Instructor) {
			named[r.Instructor] = struct{}{}
		}
		categories.add(r.Category)

		toks := weeks.Parse(r.Week)
		if len(toks) == 0 {
			weekTokens.add(constants.UnknownWeek)
		}
		for _, tok := range toks {
			weekTokens.add(tok)
		}
	}

	out.DistinctInstructors = len(named)
	out.DistinctCategories = len(categories.order)
	out.DistinctWeekTokens = len(weekTokens.order)
	out.Instructors = instructors.byCount()
	out.Categories = categories.byCount()
	out.Weeks = weekTokens.inOrder()
	return out
}

func countsAsInstructor(name string) bool {
	switch name {
	case "", constants.Unassigned, constants.UnknownInstructor:
		return false
	}
	return true
}

// counter tallies keys and remembers first appearance.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) inOrder() []entity.Bucket {
	out := make([]entity.Bucket, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, entity.Bucket{Key: k, Count: c.counts[k]})
	}
	return out
}

// byCount sorts by count descending; the stable sort keeps first-seen order
// among ties.
func (c *counter) byCount() []entity.Bucket {
	out := c.inOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
