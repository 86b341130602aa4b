package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/molpopgen/forwardts/tables"
)

func TestSimplifierFromEdgeBuffer(t *testing.T) {
	tc, buffer, samples := twoFounderSetup(t)
	s := NewSimplifier(NoFlags, zaptest.NewLogger(t))
	output := NewSimplificationOutput()

	require.NoError(t, s.FromEdgeBuffer(samples, buffer, tc, output))
	assert.Equal(t, 3, tc.NumNodes())
	assert.Equal(t, 2, tc.NumEdges())
}

func TestSimplifierReusesStateAcrossPasses(t *testing.T) {
	tc, buffer, samples := twoFounderSetup(t)
	s := NewSimplifier(NoFlags, zaptest.NewLogger(t))
	output := NewSimplificationOutput()
	require.NoError(t, s.FromEdgeBuffer(samples, buffer, tc, output))

	again := &SamplesInfo{
		Samples:                []tables.NodeID{0, 1, 2},
		EdgeBufferFounderNodes: []tables.NodeID{0, 1, 2},
	}
	require.NoError(t, s.FromEdgeBuffer(again, buffer, tc, output))
	assert.Equal(t, 3, tc.NumNodes())
}

func TestSimplifierNilLoggerIsUsable(t *testing.T) {
	tc, err := tables.New(10)
	require.NoError(t, err)
	for _, tm := range []tables.Time{0, 1} {
		_, err := tc.AddNode(tm, 0)
		require.NoError(t, err)
	}
	_, err = tc.AddEdge(0, 10, 0, 1)
	require.NoError(t, err)
	tc.SortForSimplification()

	s := NewSimplifier(NoFlags, nil)
	require.NoError(t, s.Tables(&SamplesInfo{Samples: []tables.NodeID{1}}, tc, NewSimplificationOutput()))
	assert.Equal(t, 1, tc.NumNodes())
}

func TestSimplifierSurfacesErrors(t *testing.T) {
	tc, buffer, _ := twoFounderSetup(t)
	s := NewSimplifier(SimplificationFlags(1<<20), zaptest.NewLogger(t))
	samples := &SamplesInfo{Samples: []tables.NodeID{2}}
	err := s.FromEdgeBuffer(samples, buffer, tc, NewSimplificationOutput())
	assert.ErrorIs(t, err, ErrUnknownFlags)
}
