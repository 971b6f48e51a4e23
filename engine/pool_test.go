package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolPlaySingleWorker(t *testing.T) {
	pos, _ := PositionFromFEN(FENStartPos)
	pool := NewPool(1, nil)
	tc := NewFixedDepthTimeControl(pos, 3)
	tc.Start(false)

	stats, pv := pool.Play(pos, tc)
	require.NotEmpty(t, pv, "expected a principal variation from a legal position")
	assert.Greater(t, stats.Nodes, uint64(0))
}

func TestPoolPlayMultipleWorkers(t *testing.T) {
	pos, _ := PositionFromFEN(FENStartPos)
	pool := NewPool(4, nil)
	tc := NewFixedDepthTimeControl(pos, 3)
	tc.Start(false)

	stats, pv := pool.Play(pos, tc)
	require.NotEmpty(t, pv)
	assert.Greater(t, stats.Nodes, uint64(0))

	// The move returned must be legal in the original position: searching
	// from a copy must not have perturbed pos itself.
	assert.Equal(t, FENStartPos, pos.String())
	legal := false
	for m := range legalMovesFrom(pos) {
		if m == pv[0] {
			legal = true
			break
		}
	}
	assert.True(t, legal, "leader's best move must be legal in the original position")
}

// legalMovesFrom returns every legal move from pos as a set.
func legalMovesFrom(pos *Position) map[Move]bool {
	moves := map[Move]bool{}
	st := stack{history: new(historyTable), counter: new([1 << 11]Move)}
	st.Reset(pos)
	st.GenerateMoves(All, NullMove)
	for m := st.PopMove(); m != NullMove; m = st.PopMove() {
		moves[m] = true
	}
	return moves
}
