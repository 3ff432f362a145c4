package main

import (
	"strings"
	"testing"

	"github.com/aquawatch/aquawatch_backend/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCatalog(t *testing.T) {
	var out strings.Builder

	printCatalog(&out)

	listing := out.String()
	lines := strings.Split(strings.TrimRight(listing, "\n"), "\n")
	require.Len(t, lines, 9) // header plus the eight report types
	for _, def := range report.Catalog() {
		assert.Contains(t, listing, string(def.Id))
		assert.Contains(t, listing, def.Label)
	}
}
