package builder_test

import (
	"sync"
	"time"

	"github.com/katalvlaran/planegraph/builder"
)

// recorder is a builder.Observer that counts events.
type recorder struct {
	mu        sync.Mutex
	placed    map[builder.PlacementPath]int
	proposals map[builder.ProposalOutcome]int
	bridges   map[bool]int
	kinds     []string
	vertices  int
	edges     int
}

func newRecorder() *recorder {
	return &recorder{
		placed:    map[builder.PlacementPath]int{},
		proposals: map[builder.ProposalOutcome]int{},
		bridges:   map[bool]int{},
	}
}

func (r *recorder) VertexPlaced(p builder.PlacementPath) {
	r.mu.Lock()
	r.placed[p]++
	r.mu.Unlock()
}

func (r *recorder) EdgeProposal(o builder.ProposalOutcome) {
	r.mu.Lock()
	r.proposals[o]++
	r.mu.Unlock()
}

func (r *recorder) BridgeSearch(found bool) {
	r.mu.Lock()
	r.bridges[found]++
	r.mu.Unlock()
}

func (r *recorder) Generated(kind string, vertices, edges int, _ time.Duration) {
	r.mu.Lock()
	r.kinds = append(r.kinds, kind)
	r.vertices, r.edges = vertices, edges
	r.mu.Unlock()
}
