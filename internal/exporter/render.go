package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/brayanmoyano53/dashboard/internal/errors"
	"github.com/brayanmoyano53/dashboard/pkg/contracts/domain"
)

// RenderText prints the named views as boxed tables. No names prints all views.
func RenderText(w io.Writer, views *domain.Views, names ...string) error {
	if views == nil {
		return errors.NewAppValidationError("no views to render")
	}
	if len(names) == 0 {
		names = domain.ViewNames()
	}

	for i, name := range names {
		t, ok := TableFor(views, name)
		if !ok {
			return errors.NewNotFoundError(fmt.Sprintf("view %q", name))
		}
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		renderTable(w, t)
	}
	return nil
}

func renderTable(w io.Writer, vt ViewTable) {
	_, _ = fmt.Fprintln(w, strings.ToUpper(vt.Name))

	if len(vt.Records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(vt.Headers))
	for i, h := range vt.Headers {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, record := range vt.Records {
		row := make(table.Row, len(record))
		for i, v := range record {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(vt.Records))
}
