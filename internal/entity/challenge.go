package entity

// Challenge holds the decoded parameters of a proof-of-work challenge:
// how many sequential rounds to perform and the seed the chain starts from.
// Seed bytes are interpreted as an unsigned big-endian integer.
type Challenge struct {
	Difficulty uint32
	Seed       []byte
}
