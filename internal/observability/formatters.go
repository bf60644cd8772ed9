// Package observability provides formatted output utilities for the one-shot
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/study-summarizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxEdgesToShow is the default number of relationships to display
	maxEdgesToShow = 20
)

// Printer handles formatted output for the process command.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the generated study summary.
func (p *Printer) PrintSummary(summary string) {
	p.printBox("Study Summary", summary)
}

// PrintConceptGraph outputs a human-readable view of the concept graph, or a
// note when generation degraded to no graph.
func (p *Printer) PrintConceptGraph(graph *types.ConceptGraph) {
	if graph == nil {
		p.printBox("Concept Graph", "(none — graph generation degraded)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Concepts: %d   Relationships: %d\n", len(graph.Nodes), len(graph.Edges)))
	sb.WriteString("\n")

	for _, n := range graph.Nodes {
		sb.WriteString(fmt.Sprintf("• %s\n", n.Label))
	}

	if len(graph.Edges) > 0 {
		labels := make(map[string]string, len(graph.Nodes))
		for _, n := range graph.Nodes {
			labels[n.ID] = n.Label
		}
		sb.WriteString("\n")
		for i, e := range graph.Edges {
			if i == maxEdgesToShow {
				sb.WriteString(fmt.Sprintf("… and %d more\n", len(graph.Edges)-maxEdgesToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("%s ─%s→ %s\n", labelOr(labels, e.From), e.Label, labelOr(labels, e.To)))
		}
	}

	p.printBox("Concept Graph", strings.TrimRight(sb.String(), "\n"))
}

func labelOr(labels map[string]string, id string) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return id
}
