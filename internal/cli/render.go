package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/cli/pagination"
	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/tui"
)

const (
	tabPadding  = 2
	barCells    = 20
	barFilled   = "█"
	barUnfilled = "░"
)

// pageOutput is the JSON shape of a rendered page.
type pageOutput struct {
	Entries    []catalog.Entry           `json:"entries"`
	Cursor     catalog.Cursor            `json:"cursor"`
	Pagination pagination.PaginationMeta `json:"pagination"`
}

// renderPage writes a loaded page in the requested format.
func renderPage(w io.Writer, format string, page loader.Page, pageSize int) error {
	meta := pagination.NewPaginationMeta(page.Cursor, page.Count, pageSize)

	switch format {
	case formatJSON:
		return renderJSON(w, pageOutput{Entries: page.Entries, Cursor: page.Cursor, Pagination: meta})
	case formatNDJSON:
		enc := json.NewEncoder(w)
		for _, e := range page.Entries {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderPageTable(w, page, meta)
	}
}

func renderPageTable(w io.Writer, page loader.Page, meta pagination.PaginationMeta) error {
	if len(page.Entries) == 0 {
		fmt.Fprintln(w, "No entries on this page.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTYPES\tFRONT SPRITE")
		for _, e := range page.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				tui.DisplayName(e.Name), strings.Join(e.Classifications, "/"), e.FrontImageURL)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Page %d of %d (%d entries)\n", meta.CurrentPage, max(meta.TotalPages, 1), meta.TotalItems)
	if page.Cursor.HasPrevious() {
		fmt.Fprintf(w, "Previous: %s\n", page.Cursor.Previous)
	}
	if page.Cursor.HasNext() {
		fmt.Fprintf(w, "Next:     %s\n", page.Cursor.Next)
	}
	return nil
}

// renderDetail writes a detail record in the requested format.
func renderDetail(w io.Writer, format string, d catalog.Detail) error {
	switch format {
	case formatJSON:
		return renderJSON(w, d)
	case formatNDJSON:
		return json.NewEncoder(w).Encode(d)
	}

	fmt.Fprintf(w, "%s (#%d)\n", tui.DisplayName(d.Name), d.ID)
	fmt.Fprintln(w, strings.Repeat("=", len(d.Name)+len(fmt.Sprint(d.ID))+4))
	fmt.Fprintf(w, "Types:   %s\n", tui.DisplayName(strings.Join(d.Classifications, " / ")))
	fmt.Fprintf(w, "Height:  %s\n", tui.FormatHeight(d.HeightDecimeters))
	fmt.Fprintf(w, "Weight:  %s\n", tui.FormatWeight(d.WeightDecagrams))
	fmt.Fprintf(w, "Front:   %s\n", d.FrontImageURL)
	fmt.Fprintf(w, "Back:    %s\n", d.BackImageURL)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stats")

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	for _, a := range d.Attributes {
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", tui.DisplayName(a.Label), textBar(a.Value), a.Value)
	}
	return tw.Flush()
}

// textBar draws a fixed-width bar for an attribute value.
func textBar(value int) string {
	filled := int(tui.AttributeRatio(value)*barCells + 0.5)
	return strings.Repeat(barFilled, filled) + strings.Repeat(barUnfilled, barCells-filled)
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
