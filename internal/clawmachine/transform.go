package clawmachine

// Offset moves every prize in ms by d along both axes, in place.
func Offset(ms []Machine, d int64) {
	for i := range ms {
		ms[i].Prize = ms[i].Prize.Add(Vec{X: d, Y: d})
	}
}

// Complexify turns ms into the scaled-up variant of the puzzle by pushing
// every prize PrizeOffset further away.
func Complexify(ms []Machine) { Offset(ms, PrizeOffset) }
