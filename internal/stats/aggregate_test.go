package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

func TestAggregate(t *testing.T) {
	records := []entity.CleanedCourseRecord{
		{CourseName: "高等数学", Instructor: "张三", Hours: 2, Category: "理论", Week: "1-16周"},
		{CourseName: "线性代数", Instructor: "李四", Hours: 3, Category: "实验", Week: "1-12周(单)"},
		{CourseName: "概率论", Instructor: "李四", Hours: 1, Category: "实验", Week: "3周,5周"},
		{CourseName: "体育", Instructor: constants.Unassigned, Hours: 2, Category: "理论", Week: ""},
		{CourseName: "美术", Instructor: "王五", Hours: 0, Category: "实践", Week: "1-16周"},
		{CourseName: "音乐", Instructor: constants.UnknownInstructor, Hours: 1, Category: "实践", Week: "1-16周"},
	}

	got := Aggregate(records)
	want := entity.AggregateStatistics{
		TotalCourses:        5,
		TotalHours:          9,
		DistinctInstructors: 2,
		DistinctCategories:  3,
		DistinctWeekTokens:  5,
		Instructors: []entity.Bucket{
			{Key: "李四", Count: 2},
			{Key: "张三", Count: 1},
			{Key: constants.Unassigned, Count: 1},
			{Key: constants.UnknownInstructor, Count: 1},
		},
		Categories: []entity.Bucket{
			{Key: "理论", Count: 2},
			{Key: "实验", Count: 2},
			{Key: "实践", Count: 1},
		},
		Weeks: []entity.Bucket{
			{Key: "1-16", Count: 2},
			{Key: "1-12(单)", Count: 1},
			{Key: "3", Count: 1},
			{Key: "5", Count: 1},
			{Key: constants.UnknownWeek, Count: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateIgnoresZeroHours(t *testing.T) {
	records := []entity.CleanedCourseRecord{
		{CourseName: "美术", Instructor: "王五", Hours: 0, Category: "实践", Week: "1-16周"},
	}
	got := Aggregate(records)
	if got.TotalCourses != 0 || got.TotalHours != 0 || len(got.Instructors) != 0 || len(got.Weeks) != 0 {
		t.Errorf("zero-hour record counted: %+v", got)
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	want := entity.AggregateStatistics{
		Instructors: []entity.Bucket{},
		Categories:  []entity.Bucket{},
		Weeks:       []entity.Bucket{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate(nil) mismatch (-want +got):\n%s", diff)
	}
}
