// Package stats turns a flat list of surveys into per-department summary
// statistics and export-ready rows. Everything here is pure and stateless:
// no I/O, no errors, safe to recompute on every request.
package stats

import (
	"math"

	"pulse-backend/internal/models"
)

// UnknownDepartment buckets records that somehow lack a department.
const UnknownDepartment = "Unknown"

type DepartmentStats struct {
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
}

// GroupByDepartment computes a two-level mean: each record contributes the
// mean of its own answered ratings, and the department average is the mean
// of those per-record contributions. This keeps respondents who skipped
// questions from biasing departments with fewer answers per record.
//
// Records with no valid ratings are excluded entirely — they add nothing to
// the total and nothing to the count. Unanswered questions decode to zero
// and are ignored.
func GroupByDepartment(surveys []models.Survey) map[string]DepartmentStats {
	type accumulator struct {
		totalRating float64
		count       int
	}

	groups := make(map[string]*accumulator)
	for _, survey := range surveys {
		department := survey.Department
		if department == "" {
			department = UnknownDepartment
		}
		group, ok := groups[department]
		if !ok {
			group = &accumulator{}
			groups[department] = group
		}

		total := 0
		answered := 0
		for _, rating := range survey.Ratings {
			if rating == 0 {
				continue
			}
			total += rating
			answered++
		}
		if answered == 0 {
			continue
		}

		group.totalRating += float64(total) / float64(answered)
		group.count++
	}

	result := make(map[string]DepartmentStats, len(groups))
	for department, group := range groups {
		stat := DepartmentStats{Count: group.count}
		if group.count > 0 {
			stat.AverageRating = round2(group.totalRating / float64(group.count))
		}
		result[department] = stat
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ExportRow is one flattened record for the spreadsheet: fixed columns plus
// the answers actually present. Unanswered questions are simply absent —
// consumers render them as blank cells, never zero.
type ExportRow struct {
	Name       string
	Email      string
	Department string
	Comments   string
	Answers    map[int]int
}

// ExportRows flattens surveys one row per record. Only answers to questions
// in the given questionnaire become columns; stray question ids in stored
// data are dropped.
func ExportRows(surveys []models.Survey, questions []models.Question) []ExportRow {
	known := make(map[int]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	rows := make([]ExportRow, 0, len(surveys))
	for _, survey := range surveys {
		row := ExportRow{
			Name:       survey.Name,
			Email:      survey.Email,
			Department: survey.Department,
			Comments:   survey.FinalComment,
		}
		for id, rating := range survey.Ratings {
			if !known[id] {
				continue
			}
			if row.Answers == nil {
				row.Answers = make(map[int]int)
			}
			row.Answers[id] = rating
		}
		rows = append(rows, row)
	}
	return rows
}

// Filter returns the surveys belonging to one department, or the input
// unchanged when department is empty. This is the same predicate the
// dashboard applies before re-listing or re-aggregating.
func Filter(surveys []models.Survey, department string) []models.Survey {
	if department == "" {
		return surveys
	}
	filtered := make([]models.Survey, 0, len(surveys))
	for _, survey := range surveys {
		if survey.Department == department {
			filtered = append(filtered, survey)
		}
	}
	return filtered
}
