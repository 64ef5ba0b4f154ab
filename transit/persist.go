package transit

import (
	"encoding/json"

	"github.com/tourloop/tourloop/schedule"
)

// jsonEdge is Edge's wire representation: Destination plus the
// Schedule nested as-is, since schedule.Schedule already marshals
// cleanly via its exported fields.
type jsonEdge struct {
	Destination int               `json:"destination"`
	Schedule    schedule.Schedule `json:"schedule"`
}

// jsonProblem is Problem's wire representation. StopIDToIndex and
// TripIDToIndex are reconstructed from the index->id slices on load
// rather than serialized themselves, avoiding redundant data that could
// drift out of sync.
type jsonProblem struct {
	StopIndexToID []string     `json:"stops"`
	TripIndexToID []string     `json:"trips"`
	Edges         [][]jsonEdge `json:"edges"`
}

// MarshalJSON serializes p as an array of stop ids, an array of trip
// ids, and a per-origin array of edges — the id->index maps and the
// adjacency projection are both derivable and so are not persisted.
func (p *Problem) MarshalJSON() ([]byte, error) {
	out := jsonProblem{
		StopIndexToID: p.StopIndexToID,
		TripIndexToID: p.TripIndexToID,
		Edges:         make([][]jsonEdge, len(p.Edges)),
	}
	for i, edges := range p.Edges {
		row := make([]jsonEdge, len(edges))
		for j, e := range edges {
			row[j] = jsonEdge{Destination: e.Destination, Schedule: e.Schedule}
		}
		out.Edges[i] = row
	}
	return json.Marshal(out)
}

// UnmarshalProblem restores a Problem from the format written by
// MarshalJSON, rebuilding StopIDToIndex, TripIDToIndex, and the
// Adjacency projection from the persisted index->id and edge data.
func UnmarshalProblem(data []byte) (*Problem, error) {
	var in jsonProblem
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	p := &Problem{
		StopIDToIndex: make(map[string]int, len(in.StopIndexToID)),
		StopIndexToID: in.StopIndexToID,
		TripIDToIndex: make(map[string]int, len(in.TripIndexToID)),
		TripIndexToID: in.TripIndexToID,
		Edges:         make([][]Edge, len(in.Edges)),
		Adjacency:     make([][]int, len(in.Edges)),
	}
	for i, id := range p.StopIndexToID {
		p.StopIDToIndex[id] = i
	}
	for i, id := range p.TripIndexToID {
		p.TripIDToIndex[id] = i
	}
	for i, row := range in.Edges {
		edges := make([]Edge, len(row))
		adj := make([]int, len(row))
		for j, je := range row {
			edges[j] = Edge{Destination: je.Destination, Schedule: je.Schedule}
			adj[j] = je.Destination
		}
		p.Edges[i] = edges
		p.Adjacency[i] = adj
	}
	return p, nil
}
