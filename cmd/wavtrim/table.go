package main

import (
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cwbudde/wavtrim/internal/batch"
)

func renderSummary(summary batch.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Status", "Avg volume", "Frames", "Size", "Error"})

	for _, res := range summary.Files {
		row := table.Row{filepath.Base(res.Job.Input), string(res.Status), "", "", "", ""}

		switch res.Status {
		case batch.StatusSaved:
			row[2] = strconv.FormatFloat(float64(res.AverageVolume), 'f', 4, 32)
			row[3] = strconv.Itoa(res.Frames)
			row[4] = humanize.Bytes(uint64(res.Bytes))
		case batch.StatusSkipped:
			row[2] = strconv.FormatFloat(float64(res.AverageVolume), 'f', 4, 32)
			row[3] = strconv.Itoa(res.Frames)
		case batch.StatusFailed:
			row[5] = res.Err.Error()
		}

		tw.AppendRow(row)
	}

	tw.AppendFooter(table.Row{
		"Total",
		strconv.Itoa(len(summary.Files)),
		"saved " + strconv.Itoa(summary.Saved),
		"skipped " + strconv.Itoa(summary.Skipped),
		"failed " + strconv.Itoa(summary.Failed),
		"",
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
