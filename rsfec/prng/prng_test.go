package prng

import "testing"

func TestZeroSeedRejected(t *testing.T) {
	if _, err := NewXorShift32(0); err != ErrZeroSeed {
		t.Fatalf("NewXorShift32(0): want ErrZeroSeed, got %v", err)
	}
	if _, err := NewLCG(0); err != ErrZeroSeed {
		t.Fatalf("NewLCG(0): want ErrZeroSeed, got %v", err)
	}
	if _, err := NewChaChaSeed(0); err != ErrZeroSeed {
		t.Fatalf("NewChaChaSeed(0): want ErrZeroSeed, got %v", err)
	}
}

func TestXorShift32KnownSequence(t *testing.T) {
	// First step of xorshift32 from seed 1:
	// 1 ^ 1<<13 = 8193; 8193 ^ 8193>>17 = 8193; 8193 ^ 8193<<5 = 270369.
	s, err := NewXorShift32(1)
	if err != nil {
		t.Fatalf("NewXorShift32: %v", err)
	}
	if got := s.Uint32(); got != 270369 {
		t.Fatalf("first output = %d, want 270369", got)
	}
}

func TestDeterminism(t *testing.T) {
	a, _ := NewXorShift32(42)
	b, _ := NewXorShift32(42)
	for i := 0; i < 100; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}

	la, _ := NewLCG(7)
	lb, _ := NewLCG(7)
	for i := 0; i < 100; i++ {
		if la.Uint32() != lb.Uint32() {
			t.Fatalf("LCG with same seed diverged at step %d", i)
		}
	}

	ca, _ := NewChaChaSeed(99)
	cb, _ := NewChaChaSeed(99)
	for i := 0; i < 100; i++ {
		if ca.Uint32() != cb.Uint32() {
			t.Fatalf("ChaCha with same seed diverged at step %d", i)
		}
	}
}

func TestLCGRecurrence(t *testing.T) {
	s, _ := NewLCG(1)
	want := (uint32(lcgMultiplier)*1 + lcgIncrement) % uint32(lcgModulus)
	if got := s.Uint32(); got != want {
		t.Fatalf("first output = %d, want %d", got, want)
	}
}

func TestFloat64Range(t *testing.T) {
	s, _ := NewXorShift32(123)
	for i := 0; i < 10000; i++ {
		v := Float64(s)
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
	}
}

func TestIntnRange(t *testing.T) {
	s, _ := NewLCG(5)
	for i := 0; i < 1000; i++ {
		if v := Intn(s, 17); v < 0 || v >= 17 {
			t.Fatalf("Intn out of range: %d", v)
		}
	}
}

func TestMeasureUniformity(t *testing.T) {
	// A uniform [0,1) source has mean 0.5 and variance 1/12 ~ 0.0833.
	for name, src := range map[string]Source{
		"xorshift": mustXorShift(t, 0xdead),
		"chacha":   mustChaCha(t, 0xbeef),
	} {
		sum := Measure(src, 100000)
		if sum.Mean < 0.45 || sum.Mean > 0.55 {
			t.Fatalf("%s: mean %v too far from 0.5", name, sum.Mean)
		}
		if sum.Variance < 0.07 || sum.Variance > 0.10 {
			t.Fatalf("%s: variance %v too far from 1/12", name, sum.Variance)
		}
	}
}

func TestMeasureEmpty(t *testing.T) {
	s, _ := NewXorShift32(1)
	if sum := Measure(s, 0); sum.Mean != 0 || sum.Variance != 0 {
		t.Fatalf("Measure with n=0 should be zero, got %+v", sum)
	}
}

// fixedSource replays a canned sequence, for exact-value statistics.
type fixedSource struct {
	values []uint32
	i      int
}

func (f *fixedSource) Uint32() uint32 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestMeasureSampleVariance(t *testing.T) {
	// Samples map to 0.0 and 0.5: mean 0.25, sample variance
	// (0.0625 + 0.0625) / (2-1) = 0.125.
	src := &fixedSource{values: []uint32{0, 1 << 31}}
	sum := Measure(src, 2)
	if sum.Mean != 0.25 {
		t.Fatalf("mean: got %v, want 0.25", sum.Mean)
	}
	if sum.Variance != 0.125 {
		t.Fatalf("variance: got %v, want 0.125", sum.Variance)
	}
}

func TestMeasureSingleSample(t *testing.T) {
	src := &fixedSource{values: []uint32{1 << 31}}
	if sum := Measure(src, 1); sum.Mean != 0.5 || sum.Variance != 0 {
		t.Fatalf("single sample: got %+v", sum)
	}
}

func TestIntnNonPositivePanics(t *testing.T) {
	s, _ := NewXorShift32(9)
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Intn(%d) did not panic", n)
				}
			}()
			Intn(s, n)
		}()
	}
}

func TestSeedUnique(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		s := Seed()
		if seen[s] {
			t.Fatalf("Seed repeated after %d calls", i)
		}
		seen[s] = true
	}
}

func mustXorShift(t *testing.T, seed uint32) *XorShift32 {
	t.Helper()
	s, err := NewXorShift32(seed)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustChaCha(t *testing.T, seed uint64) *ChaCha {
	t.Helper()
	s, err := NewChaChaSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	return s
}
