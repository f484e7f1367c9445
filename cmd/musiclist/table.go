package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bft-labs/crtools/internal/app"
	"github.com/bft-labs/crtools/internal/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, rounded bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	if rounded {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func musicTable(catalog domain.Catalog, rounded bool) string {
	rows := make([][]string, 0, len(catalog))
	for _, m := range catalog {
		rows = append(rows, []string{
			m.BaseDir,
			m.Title,
			m.Artist,
			strconv.Itoa(len(m.Charts.Single)),
			strconv.Itoa(len(m.Charts.Double)),
		})
	}
	return renderTable(
		[]string{"Folder", "Title", "Artist", "Single", "Double"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
		rounded,
	)
}

func chartTable(refs []domain.ChartRef, rounded bool) string {
	rows := make([][]string, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, []string{
			r.Chart.File,
			r.Mode,
			r.Chart.Title,
			strconv.Itoa(r.Chart.Level),
			strconv.FormatFloat(r.Chart.BPM, 'f', -1, 64),
		})
	}
	return renderTable(
		[]string{"File", "Mode", "Title", "Level", "BPM"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
		rounded,
	)
}

func musicCharts(m *domain.Music) []domain.ChartRef {
	refs := make([]domain.ChartRef, 0, len(m.Charts.Single)+len(m.Charts.Double))
	for _, c := range m.Charts.Single {
		refs = append(refs, domain.ChartRef{Mode: domain.ModeSingle, Chart: c})
	}
	for _, c := range m.Charts.Double {
		refs = append(refs, domain.ChartRef{Mode: domain.ModeDouble, Chart: c})
	}
	return refs
}

// printListing writes the result of a list command to w. Without targets the
// whole catalog is shown as one table.
func printListing(w io.Writer, listing *app.Listing, all, rounded bool) {
	if all {
		fmt.Fprintln(w, musicTable(listing.Musics, rounded))
		return
	}
	for _, d := range listing.Details {
		fmt.Fprintln(w, d.Target)
		if d.Music != nil {
			fmt.Fprintf(w, "  title:  %s\n", d.Music.Title)
			fmt.Fprintf(w, "  genre:  %s\n", d.Music.Genre)
			fmt.Fprintf(w, "  artist: %s\n", d.Music.Artist)
			fmt.Fprintf(w, "  packed: %t\n", d.Music.PackedAssets)
			fmt.Fprintln(w, chartTable(musicCharts(d.Music), rounded))
			continue
		}
		fmt.Fprintln(w, chartTable(d.Charts, rounded))
	}
}
