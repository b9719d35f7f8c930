// Package export renders a parcel's activity history as an XLSX workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"plantlog/entities"
)

var header = []string{
	"Date", "Activity", "Crop", "Variety", "Quantity", "Unit",
	"Cost", "Weather", "Notes",
}

// ActivityWorkbook writes one row per activity under a header row,
// keeping the order of the input slice (newest first as the repository
// returns it).
func ActivityWorkbook(sheetName string, activities []entities.Activity) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, a := range activities {
		row := []any{
			a.Date.Format("2006-01-02"), a.ActivityType, a.CropType, a.Variety,
			optional(a.Quantity), a.Unit, optional(a.Cost), a.Weather, a.Notes,
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func optional(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
