package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/shopspring/decimal"

	"github.com/aalvaropc/byobox/internal/domain"
)

const maxTitleLen = 40

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderCategoryHeader(t Theme, bar progress.Model, st domain.CategoryState) string {
	c := st.Category

	bounds := fmt.Sprintf("%d/%d", st.Current, c.Max)
	if c.Min > 0 {
		bounds += fmt.Sprintf(" (min %d)", c.Min)
	}
	if c.Optional {
		bounds += " optional"
	}

	mark := t.Invalid.Render("✗")
	if st.Valid {
		mark = t.Valid.Render("✓")
	}
	return fmt.Sprintf("%s %s  %s %s", mark, t.Category.Render(c.DisplayName()), bar.ViewAs(st.Progress/100), bounds)
}

func renderProductLine(p domain.Product, qty int) string {
	title := clampString(p.Title, maxTitleLen)
	line := fmt.Sprintf("[%d] %-*s %8s", qty, maxTitleLen, title, money(p.Price))
	if p.AllowDuplicates {
		line += "  x2+"
	}
	if p.VariantID == "" {
		line += "  (not sold separately)"
	}
	return line
}

func renderReceipt(t Theme, r domain.Receipt, id string) string {
	var b strings.Builder

	b.WriteString(t.Valid.Render("Added to cart"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Box:    %s\n", r.BoxName))
	if r.BundleID != "" {
		b.WriteString(fmt.Sprintf("Bundle: %s\n", r.BundleID))
	}
	b.WriteString(fmt.Sprintf("Items:  %d\n", len(r.Request.Items)))
	b.WriteString(fmt.Sprintf("Status: HTTP %d\n\n", r.ResponseStatus))

	for _, l := range r.Quote.Lines {
		b.WriteString(fmt.Sprintf("  %d x %s  %s\n", l.Quantity, clampString(l.Title, maxTitleLen), money(l.LineTotal)))
	}
	b.WriteString(fmt.Sprintf("  fee  %s\n", money(r.Quote.Fee)))
	b.WriteString(t.Total.Render("Total " + money(r.Quote.Total)))
	b.WriteString("\n")

	for _, sk := range r.Skipped {
		b.WriteString(t.Help.Render(fmt.Sprintf("skipped %s: %s", sk.ProductID, sk.Reason)))
		b.WriteString("\n")
	}

	if id != "" {
		b.WriteString("\n" + t.Help.Render("Receipt: "+id))
	}
	return b.String()
}
