// Package export renders flattened survey rows as an xlsx workbook.
package export

import (
	"fmt"

	"pulse-backend/internal/models"
	"pulse-backend/internal/stats"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Feedbacks"

// Workbook builds the spreadsheet: a header row with the fixed columns plus
// one column per question answered by at least one record (in questionnaire
// order), then one row per record. Cells for unanswered questions are left
// blank, not zero-filled.
func Workbook(rows []stats.ExportRow, questions []models.Question) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	answered := make(map[int]bool)
	for _, row := range rows {
		for id := range row.Answers {
			answered[id] = true
		}
	}

	headers := []interface{}{"Name", "Email", "Department", "Comments"}
	var questionColumns []models.Question
	for _, q := range questions {
		if !answered[q.ID] {
			continue
		}
		questionColumns = append(questionColumns, q)
		headers = append(headers, fmt.Sprintf("Q%d - %s", q.ID, q.Text))
	}
	if err := setRow(f, 1, headers); err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowNum := i + 2
		values := []interface{}{row.Name, row.Email, row.Department, row.Comments}
		if err := setRow(f, rowNum, values); err != nil {
			return nil, err
		}
		for col, q := range questionColumns {
			rating, ok := row.Answers[q.ID]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(len(values)+col+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, rating); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
