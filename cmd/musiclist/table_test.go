package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bft-labs/crtools/internal/app"
	"github.com/bft-labs/crtools/internal/domain"
)

func sampleCatalog() domain.Catalog {
	m := domain.NewMusic("song1")
	m.Title = "First"
	m.Artist = "Someone"
	m.AddChart(domain.Chart{File: "normal.bmson", Title: "First", Level: 3, BPM: 140})
	m.Charts.Double = append(m.Charts.Double, domain.Chart{File: "dp.bmson", Title: "First DP", Level: 9, BPM: 140.5})
	return domain.Catalog{m, domain.NewMusic("song2")}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := renderTable(nil, nil, nil, false); got != "" {
		t.Fatalf("renderTable with no headers = %q", got)
	}
}

func TestPrintListingAll(t *testing.T) {
	var buf bytes.Buffer
	printListing(&buf, &app.Listing{Musics: sampleCatalog()}, true, false)
	out := buf.String()
	for _, want := range []string{"FOLDER", "song1", "First", "Someone", "song2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintListingDetails(t *testing.T) {
	catalog := sampleCatalog()
	listing := &app.Listing{Details: []app.Detail{
		{Target: "song1", Music: &catalog[0]},
		{Target: "song1:dp.bmson", Charts: catalog[0].FindCharts("dp.bmson")},
	}}

	var buf bytes.Buffer
	printListing(&buf, listing, false, false)
	out := buf.String()
	for _, want := range []string{"song1:dp.bmson", "title:  First", "packed: false", "normal.bmson", "double", "140.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
