package common

// ZobristVersion identifies the key table. Bump it whenever the seed or the
// derivation below changes, since persisted hashes become incomparable.
const ZobristVersion = 1

const zobristSeed = 0x9e3779b97f4a7c15 ^ ZobristVersion

var (
	zobristPieceKeys  [2][King + 1]uint64
	zobristSquareKeys [64]uint64
	zobristKeys       [2][King + 1][64]uint64
	zobristSideKey    uint64
)

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	return mix64(s.state)
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func init() {
	var rng = splitmix64{state: zobristSeed}
	for side := White; side <= Black; side++ {
		for pt := Pawn; pt <= King; pt++ {
			zobristPieceKeys[side][pt] = rng.next()
		}
	}
	for sq := range zobristSquareKeys {
		zobristSquareKeys[sq] = rng.next()
	}
	zobristSideKey = rng.next()

	// The mix keeps piece and square components from cancelling out,
	// so swapping two pieces changes the hash.
	for side := White; side <= Black; side++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := range zobristSquareKeys {
				zobristKeys[side][pt][sq] = mix64(zobristPieceKeys[side][pt] + zobristSquareKeys[sq])
			}
		}
	}
}

// ZobristHash depends on piece placement only: side to move, move history
// and HasMoved flags are not part of it.
func (b *Board) ZobristHash() uint64 {
	var result uint64
	for row := 0; row < 8; row++ {
		for column := 0; column < 8; column++ {
			var piece = b.squares[row][column]
			if piece.Type != Empty {
				result ^= zobristKeys[piece.Side][piece.Type][row*8+column]
			}
		}
	}
	return result
}
