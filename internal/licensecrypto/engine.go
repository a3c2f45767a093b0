package licensecrypto

import "github.com/seehuhn/mt19937"

// newEngine returns a MT19937-64 generator seeded with the full 64 bits of
// seed. The first draw is the full-range uniform value keys start from.
func newEngine(seed uint64) *mt19937.MT19937 {
	rng := mt19937.New()
	rng.Seed(int64(seed))
	return rng
}
