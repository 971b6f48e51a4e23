// +build !coach

package engine

// Score is a pair of middlegame/endgame weights for one evaluation term.
// Evaluation never uses M or E directly: every term is blended through
// dualWeight using the position's opp-attack-power factor before it is
// added to a side's total.
type Score struct {
	M, E int32 // mid game, end game
}

// dualWeight blends a middlegame/endgame pair using a, the attacking
// power of the side whose pieces are NOT being scored (opp_attack_power
// in the evaluator spec). a=1 weighs the middlegame term fully, a=0 the
// endgame term fully.
//
//	dual_weight([mg, eg], a) = mg·a + eg·(1−a)
func dualWeight(s Score, a float64) int32 {
	return int32(float64(s.M)*a + float64(s.E)*(1-a))
}

// Accum accumulates a position's mid/end game score contributions for
// one side as evaluation runs.
type Accum struct {
	M, E int32
}

// add adds a single weight to the accumulator.
func (a *Accum) add(s Score) {
	a.M += s.M
	a.E += s.E
}

// addN adds a weight n times to the accumulator.
func (a *Accum) addN(s Score, n int32) {
	a.M += s.M * n
	a.E += s.E * n
}

// merge adds another accumulator's contribution.
func (a *Accum) merge(o Accum) {
	a.M += o.M
	a.E += o.E
}

// deduct subtracts another accumulator's contribution.
func (a *Accum) deduct(o Accum) {
	a.M -= o.M
	a.E -= o.E
}
