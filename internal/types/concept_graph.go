package types

// ConceptNode is a single concept extracted from the source material.
type ConceptNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ConceptEdge is a directed, labeled relationship between two concepts.
// From and To reference ConceptNode ids.
type ConceptEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// ConceptGraph is the structured artifact produced by the graph generation
// call. It is attached to a StatusRecord once and never mutated afterwards.
type ConceptGraph struct {
	Nodes []ConceptNode `json:"nodes"`
	Edges []ConceptEdge `json:"edges"`
}

// DanglingEdges returns the edges whose From or To id does not reference any
// node in the graph. The generation backend does not guarantee referential
// integrity; callers use this to log, not to reject.
func (g *ConceptGraph) DanglingEdges() []ConceptEdge {
	known := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.ID] = true
	}

	var dangling []ConceptEdge
	for _, e := range g.Edges {
		if !known[e.From] || !known[e.To] {
			dangling = append(dangling, e)
		}
	}
	return dangling
}
