package commands

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"go.trai.ch/refdex/internal/app"
	"go.trai.ch/refdex/internal/core/domain"
	"go.trai.ch/refdex/internal/engine/search"
)

// progressPrinter returns a ProgressFunc that rewrites a single progress
// line on the given output.
func progressPrinter(out *termenv.Output) app.ProgressFunc {
	return func(completed, total int) {
		if total == 0 {
			return
		}
		out.ClearLine()
		fmt.Fprintf(out, "\rindexing %d/%d", completed, total)
		if completed >= total {
			fmt.Fprintln(out)
		}
	}
}

// renderResult writes a query result in fixed category order.
func renderResult(w io.Writer, out *termenv.Output, target string, res search.Result) {
	if res.Empty() {
		fmt.Fprintf(w, "no known relations for %s\n", target)
		return
	}

	fmt.Fprintln(w, out.String(fmt.Sprintf("Referenced by (%d)", len(res.References))).Bold())
	for _, ref := range res.References {
		fmt.Fprintf(w, "  %s\n", ref)
	}

	for _, cat := range domain.Categories() {
		nodes := res.Dependencies[cat]
		if len(nodes) == 0 {
			continue
		}
		fmt.Fprintln(w, out.String(fmt.Sprintf("%s (%d)", cat, len(nodes))).Bold())
		for _, node := range nodes {
			fmt.Fprintf(w, "  %s\n", node)
		}
	}
}
