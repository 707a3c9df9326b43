package extract

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractXlsx extracts every non-empty cell value from every sheet of a
// workbook, one value per line.
func ExtractXlsx(path string) (string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	var sb strings.Builder
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		for _, row := range rows {
			for _, cell := range row {
				if cell == "" {
					continue
				}
				sb.WriteString(cell)
				sb.WriteByte('\n')
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
