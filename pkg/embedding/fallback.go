package embedding

import (
	"crypto/md5"
	"encoding/hex"
	"math/rand"
	"strconv"
)

// FallbackVector produces a deterministic pseudo-random unit vector for the
// given text, seeded from a hash of the text. It stands in for the real
// embedding service when that service is unreachable: identical queries keep
// yielding identical vectors, so downstream caching and comparison behavior
// is preserved even though retrieval quality degrades to noise.
func FallbackVector(text string, dim int) []float32 {
	sum := md5.Sum([]byte(text))
	seed, err := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	if err != nil {
		seed = 0
	}

	rng := rand.New(rand.NewSource(seed))
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = float32(rng.NormFloat64())
	}
	return normalizeVector(vec)
}
