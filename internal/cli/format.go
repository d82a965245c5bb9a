package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/byobox/internal/domain"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

type categoryView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Current  int     `json:"current"`
	Min      int     `json:"min"`
	Max      int     `json:"max"`
	Optional bool    `json:"optional"`
	Valid    bool    `json:"valid"`
	Progress float64 `json:"progress"`
}

type quoteView struct {
	Quote      domain.Quote   `json:"quote"`
	Categories []categoryView `json:"categories"`
	Progress   float64        `json:"progress"`
}

func newQuoteView(s domain.Session) quoteView {
	states := s.CategoryStates()
	v := quoteView{
		Quote:      s.Quote(),
		Categories: make([]categoryView, 0, len(states)),
		Progress:   domain.OverallProgress(states),
	}
	for _, st := range states {
		v.Categories = append(v.Categories, categoryView{
			ID:       st.Category.ID,
			Name:     st.Category.DisplayName(),
			Current:  st.Current,
			Min:      st.Category.Min,
			Max:      st.Category.Max,
			Optional: st.Category.Optional,
			Valid:    st.Valid,
			Progress: st.Progress,
		})
	}
	return v
}

func printQuote(w io.Writer, s domain.Session, format string) error {
	v := newQuoteView(s)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "pretty", "":
		printPrettyQuote(w, v)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyQuote(w io.Writer, v quoteView) {
	q := v.Quote
	fmt.Fprintf(w, "Box: %s\n\n", q.BoxName)

	for _, c := range v.Categories {
		mark := "✓"
		if !c.Valid {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %-16s %d/%d  %s\n", mark, c.Name, c.Current, c.Max, limitsLabel(c.Min, c.Max, c.Optional))
	}
	fmt.Fprintln(w)

	if len(q.Lines) == 0 {
		fmt.Fprintln(w, "(nothing selected)")
	}
	for _, ln := range q.Lines {
		fmt.Fprintf(w, "  %2d × %-24s %8s  %8s\n", ln.Quantity, ln.Title, money(ln.UnitPrice), money(ln.LineTotal))
	}

	fmt.Fprintf(w, "\n  %-29s %18s\n", "Products", money(q.ProductsTotal))
	fmt.Fprintf(w, "  %-29s %18s\n", "Box fee", money(q.Fee))
	fmt.Fprintf(w, "  %-29s %18s\n", "Total", money(q.Total))

	status := "complete"
	if !q.Complete {
		status = fmt.Sprintf("incomplete (%.0f%%)", v.Progress)
	}
	fmt.Fprintf(w, "\nStatus: %s\n", status)
}

func printReceipt(w io.Writer, r domain.Receipt, id, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"receipt_id": id,
			"receipt":    r,
		})
	case "pretty", "":
		fmt.Fprintf(w, "Added %s to cart (%d items, HTTP %d)\n", r.BoxName, len(r.Request.Items), r.ResponseStatus)
		fmt.Fprintf(w, "Bundle: %s\n", r.BundleID)
		fmt.Fprintf(w, "Total:  %s\n", money(r.Quote.Total))
		if len(r.Skipped) > 0 {
			names := make([]string, 0, len(r.Skipped))
			for _, sk := range r.Skipped {
				names = append(names, sk.Title)
			}
			fmt.Fprintf(w, "Skipped (no variant): %s\n", strings.Join(names, ", "))
		}
		if id != "" {
			fmt.Fprintf(w, "Receipt: %s\n", id)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
