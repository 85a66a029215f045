package engine

import "fmt"

// Stats counts search work and cutoff sources for one Search call.
type Stats struct {
	Nodes            uint64
	QNodes           uint64
	TTHits           uint64
	TTCutoffs        uint64
	BetaCutoffs      uint64
	QStandPatCutoffs uint64
	QBetaCutoffs     uint64
	DeltaPrunes      uint64
	SEEPrunes        uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes %d qnodes %d tthits %d ttcuts %d betacuts %d standpat %d qbetacuts %d delta %d see %d",
		s.Nodes, s.QNodes, s.TTHits, s.TTCutoffs, s.BetaCutoffs, s.QStandPatCutoffs, s.QBetaCutoffs, s.DeltaPrunes, s.SEEPrunes)
}
