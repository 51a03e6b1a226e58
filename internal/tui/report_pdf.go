package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/tempo/internal/config"
	"github.com/akyairhashvil/tempo/internal/stats"
	"github.com/akyairhashvil/tempo/internal/storage"
	"github.com/akyairhashvil/tempo/internal/util"
)

// GenerateWeeklyReport writes the seven-day focus report into the user's
// documents folder and returns the file path.
func GenerateWeeklyReport(ctx context.Context, repo storage.Repository, week stats.WeekSummary, streak int, now time.Time) (string, error) {
	return writeWeeklyReport(ctx, repo, week, streak, now, util.ReportsDir(config.AppName))
}

func writeWeeklyReport(ctx context.Context, repo storage.Repository, week stats.WeekSummary, streak int, now time.Time, dir string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: week ending %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Daily focus")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, d := range week.Days {
		focus := "-"
		if d.FocusSeconds > 0 {
			focus = FormatDuration(time.Duration(d.FocusSeconds) * time.Second)
		}
		pdf.Cell(0, 8, fmt.Sprintf("  %s    %s    %d/%d sessions", d.Date, focus, d.Completed, d.Sessions))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Week total: %s", FormatDuration(week.TotalFocus)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Sessions completed: %d of %d", week.TotalDone, week.TotalStarted))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Current streak: %d day(s)", streak))
	pdf.Ln(12)

	tasks := completedTasksSince(ctx, repo, now.AddDate(0, 0, -7))
	if len(tasks) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Tasks completed this week")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, t := range tasks {
			pdf.Cell(0, 8, fmt.Sprintf("  [x] %s", t.Description))
			pdf.Ln(6)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
