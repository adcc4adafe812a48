package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"

	"github.com/cwbudde/algo-nd/nd/img"
)

func summarize(stage string, a *img.ArrayImg[sample], elapsed time.Duration) Report {
	data := a.Data()
	r := Report{Stage: stage, Duration: elapsed}
	if len(data) == 0 {
		return r
	}
	r.Min = float64(lo.Min(data))
	r.Max = float64(lo.Max(data))
	r.Mean = float64(lo.Sum(data)) / float64(len(data))
	return r
}

func printReport(w io.Writer, rows []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tMin\tMax\tMean\tDuration\n"); err != nil {
		return fmt.Errorf("ndfilter: write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t---\t---\t----\t--------\n"); err != nil {
		return fmt.Errorf("ndfilter: write header: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%s\n",
			r.Stage, r.Min, r.Max, r.Mean, r.Duration.Round(time.Microsecond),
		); err != nil {
			return fmt.Errorf("ndfilter: write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("ndfilter: flush output: %w", err)
	}
	return nil
}
