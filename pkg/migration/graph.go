package migration

// GraphNode is one node descriptor for the dependency graph. The
// drawing itself happens client-side; the API only ships descriptors.
type GraphNode struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Type   string `json:"type"`
	Status Status `json:"status"`
}

// GraphEdge is a directed dependency: From must be migrated before To.
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is the full dependency graph of the object inventory.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// BuildGraph derives node and edge descriptors from the object
// inventory. Edges pointing at unknown objects are dropped rather than
// surfaced as dangling references.
func BuildGraph(objects []Object) Graph {
	known := make(map[string]bool, len(objects))
	for _, o := range objects {
		known[o.ID] = true
	}

	g := Graph{
		Nodes: make([]GraphNode, 0, len(objects)),
		Edges: make([]GraphEdge, 0, len(objects)),
	}
	for _, o := range objects {
		g.Nodes = append(g.Nodes, GraphNode{
			ID:     o.ID,
			Label:  o.SAPName,
			Type:   o.Type,
			Status: o.Status,
		})
		for _, dep := range o.Dependencies {
			if !known[dep] {
				continue
			}
			g.Edges = append(g.Edges, GraphEdge{From: dep, To: o.ID})
		}
	}
	return g
}
