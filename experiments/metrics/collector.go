package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	PhaseAware bool
	Duration   time.Duration
	Nodes      int
	Leaves     int
}

type MoveMetric struct {
	Step  int
	Piece string // Marker of the side to move
	Move  string
	Score float64 // Evaluation of the resulting board for Piece
	SearchMetric
}

type GameMetric struct {
	ID            string
	StartingPiece string
	Winner        string // Marker of the winner, "" for a draw
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(depth int, phaseAware bool)
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	phaseAware bool
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, phaseAware bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.phaseAware = phaseAware
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		PhaseAware: m.phaseAware,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, phaseAware bool) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddLeaf()                         {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
