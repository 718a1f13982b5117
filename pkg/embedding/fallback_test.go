package embedding

import (
	"math"
	"testing"
)

func TestFallbackVectorDeterministic(t *testing.T) {
	a := FallbackVector("when is the cardiology clinic open", 1024)
	b := FallbackVector("when is the cardiology clinic open", 1024)

	if len(a) != 1024 || len(b) != 1024 {
		t.Fatalf("expected 1024 dimensions, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vectors diverge at index %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestFallbackVectorDiffersByText(t *testing.T) {
	a := FallbackVector("doctor availability", 64)
	b := FallbackVector("holiday notices", 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different texts produced identical fallback vectors")
	}
}

func TestFallbackVectorIsNormalized(t *testing.T) {
	vec := FallbackVector("slot exceptions next week", 256)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if math.Abs(norm-1.0) > 1e-4 {
		t.Fatalf("expected unit norm, got %f", norm)
	}
}
