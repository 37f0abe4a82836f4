package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ersonp/patchnotes/internal/application/handlers"
	"github.com/ersonp/patchnotes/internal/domain/entities"
)

// printGenerateResults writes one line per post and returns the number of
// failures.
func printGenerateResults(w io.Writer, results []handlers.GenerateResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", r.URL, r.Err)
			continue
		}
		fmt.Fprintf(w, "OK   %s -> %s (%d heroes, %d items, %d general)\n",
			r.ReleaseID, r.OutputDir, r.Heroes, r.Items, r.General)
	}
	return failed
}

func printCatalogSummary(w io.Writer, summary *handlers.CatalogSummary) {
	fmt.Fprintf(w, "Catalog: %d heroes, %d items\n", summary.Heroes, summary.Items)
	if len(summary.Overlap) > 0 {
		fmt.Fprintf(w, "Warning: %d keys are both a hero and an item (treated as heroes): %v\n",
			len(summary.Overlap), summary.Overlap)
	}
}

func printCatalogRecords(w io.Writer, records []entities.CatalogRecord, showKeys bool) {
	for _, r := range records {
		if showKeys {
			fmt.Fprintf(w, "%-32s %s\n", r.DisplayName, r.Key)
			continue
		}
		fmt.Fprintln(w, r.DisplayName)
	}
}

func printHistory(w io.Writer, patches []entities.ArchivedPatch) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RELEASE\tDATE\tHEROES\tITEMS\tGENERAL\tGENERATED\tDIRECTORY")
	for _, p := range patches {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			p.ReleaseID,
			p.ReleaseDate.Format("2006-01-02"),
			p.Heroes,
			p.Items,
			p.General,
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.OutputDir,
		)
	}
	tw.Flush()
}
