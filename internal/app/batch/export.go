package batch

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"
)

// WriteSummary exports the batch results to an xlsx workbook.
func WriteSummary(summary *Summary, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Batch Run")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "File"
	headerRow.AddCell().Value = "Status"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Transcript Chars"
	headerRow.AddCell().Value = "Completed At"
	headerRow.AddCell().Value = "Error"

	for _, r := range summary.Results {
		row := sheet.AddRow()
		row.AddCell().Value = r.Filename
		row.AddCell().Value = r.Status
		row.AddCell().Value = fmt.Sprintf("%.2fs", r.AudioDuration.Seconds())
		row.AddCell().Value = fmt.Sprint(r.TranscriptChars)
		row.AddCell().Value = r.CompletedAt.Format(time.RFC3339)
		row.AddCell().Value = r.Error
	}

	totals := sheet.AddRow()
	totals.AddCell().Value = fmt.Sprintf("%d files", len(summary.Results))
	totals.AddCell().Value = fmt.Sprintf("%d ok / %d failed", summary.Succeeded, summary.Failed)
	totals.AddCell().Value = summary.CompletedAt.Sub(summary.StartedAt).Round(time.Second).String()

	return file.Save(outputFilePath)
}
