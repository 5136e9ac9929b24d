package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Root-Wars/internal/sim"
)

// reportTail is how many log lines a copied report includes.
const reportTail = 40

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Report renders the world summary followed by the most recent log lines.
func Report(w *sim.World, log *sim.SimLog, tail int) string {
	var sb strings.Builder
	sb.WriteString(sim.Summary(w))

	entries := log.Entries()
	if len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}
	fmt.Fprintf(&sb, "--- Last %d events ---\n", len(entries))
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// copyReport puts the current report on the system clipboard.
func (g *Game) copyReport() error {
	if err := writeClipboard(Report(g.world, g.simLog, reportTail)); err != nil {
		return fmt.Errorf("copy report: %w", err)
	}
	return nil
}
