package simplify

import (
	"time"

	"go.uber.org/zap"

	"github.com/molpopgen/forwardts/tables"
)

// Simplifier runs simplification passes with reusable scratch state and
// structured logging. One instance serves one simulation loop; it is not
// safe for concurrent use.
type Simplifier struct {
	Flags SimplificationFlags
	Log   *zap.Logger

	state *SimplificationBuffers
}

// NewSimplifier returns a pass runner. A nil log disables logging.
func NewSimplifier(flags SimplificationFlags, log *zap.Logger) *Simplifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simplifier{
		Flags: flags,
		Log:   log,
		state: NewSimplificationBuffers(),
	}
}

// FromEdgeBuffer runs the buffered pass, logging its outcome.
func (s *Simplifier) FromEdgeBuffer(
	samples *SamplesInfo,
	edgeBuffer *EdgeBuffer,
	tc *tables.TableCollection,
	output *SimplificationOutput,
) error {
	start := time.Now()
	nodesIn, edgesIn := tc.NumNodes(), tc.NumEdges()

	if err := FromEdgeBuffer(samples, s.Flags, s.state, edgeBuffer, tc, output); err != nil {
		s.Log.Error("edge buffer simplification failed",
			zap.Int("nodes_in", nodesIn),
			zap.Int("edges_in", edgesIn),
			zap.Error(err),
		)
		return err
	}
	s.Log.Debug("simplified from edge buffer",
		zap.Int("nodes_in", nodesIn),
		zap.Int("edges_in", edgesIn),
		zap.Int("nodes_out", tc.NumNodes()),
		zap.Int("edges_out", tc.NumEdges()),
		zap.Int("samples", len(samples.Samples)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Tables runs the single source pass, logging its outcome.
func (s *Simplifier) Tables(
	samples *SamplesInfo,
	tc *tables.TableCollection,
	output *SimplificationOutput,
) error {
	start := time.Now()
	nodesIn, edgesIn := tc.NumNodes(), tc.NumEdges()

	if err := Tables(samples, s.Flags, s.state, tc, output); err != nil {
		s.Log.Error("table simplification failed",
			zap.Int("nodes_in", nodesIn),
			zap.Int("edges_in", edgesIn),
			zap.Error(err),
		)
		return err
	}
	s.Log.Debug("simplified tables",
		zap.Int("nodes_in", nodesIn),
		zap.Int("edges_in", edgesIn),
		zap.Int("nodes_out", tc.NumNodes()),
		zap.Int("edges_out", tc.NumEdges()),
		zap.Int("samples", len(samples.Samples)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
