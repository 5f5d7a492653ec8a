package permutation

import (
	"fmt"
	"math/big"
	"testing"
)

func TestFeistelNetworkRejectsZeroCapacity(t *testing.T) {
	_, err := NewFeistelNetwork(big.NewInt(0), NewKeyFromUint64(1))
	if err != ErrInvalidCapacity {
		t.Fatalf("got %v, want ErrInvalidCapacity", err)
	}
}

func TestFeistelNetworkDomainIsPowerOfTwoAtLeastN(t *testing.T) {
	for n := int64(1); n <= 1024; n++ {
		fn, err := NewFeistelNetwork(big.NewInt(n), NewKeyFromUint64(1))
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		domain := fn.Domain()
		if domain.Cmp(big.NewInt(n)) < 0 {
			t.Fatalf("n=%d: domain %v is smaller than n", n, domain)
		}
		// Domain must be an exact power of two: domain & (domain-1) == 0.
		domainMinus1 := new(big.Int).Sub(domain, big.NewInt(1))
		if new(big.Int).And(domain, domainMinus1).Sign() != 0 {
			t.Fatalf("n=%d: domain %v is not a power of two", n, domain)
		}
	}
}

func TestFeistelNetworkRoundsWithinInvariant(t *testing.T) {
	for n := int64(1); n <= 4096; n *= 2 {
		fn, err := NewFeistelNetwork(big.NewInt(n+1), NewKeyFromUint64(7))
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if fn.Rounds() < 8 || fn.Rounds() > 32 {
			t.Fatalf("n=%d: rounds %d outside [8,32]", n, fn.Rounds())
		}
	}
}

func TestFeistelNetworkSelfInverse(t *testing.T) {
	for _, length := range []int64{2, 3, 4, 8, 10, 16, 18} {
		length := length
		t.Run(fmt.Sprintf("length=%d", length), func(t *testing.T) {
			t.Parallel()
			n := new(big.Int).Lsh(big.NewInt(1), uint(length))
			fn, err := NewFeistelNetwork(n, NewKeyFromUint64(42))
			if err != nil {
				t.Fatal(err)
			}
			domain := fn.Domain()
			for x := big.NewInt(0); x.Cmp(domain) < 0; x.Add(x, big.NewInt(1)) {
				y := fn.Permute(new(big.Int).Set(x))
				back := fn.Invert(y)
				if back.Cmp(x) != 0 {
					t.Fatalf("invert(permute(%v)) = %v, want %v", x, back, x)
				}
				fwd := fn.Permute(fn.Invert(new(big.Int).Set(y)))
				if fwd.Cmp(y) != 0 {
					t.Fatalf("permute(invert(%v)) = %v, want %v", y, fwd, y)
				}
			}
		})
	}
}

func TestFeistelNetworkPermuteIsBijectionOnDomain(t *testing.T) {
	for length := 2; length <= 14; length++ {
		length := length
		t.Run(fmt.Sprintf("length=%d", length), func(t *testing.T) {
			t.Parallel()
			n := new(big.Int).Lsh(big.NewInt(1), uint(length))
			fn, err := NewFeistelNetwork(n, NewKeyFromUint64(uint64(length)))
			if err != nil {
				t.Fatal(err)
			}
			domain := fn.Domain()
			seen := make(map[string]int64)
			for x := int64(0); big.NewInt(x).Cmp(domain) < 0; x++ {
				out := fn.Permute(big.NewInt(x))
				key := out.String()
				if other, ok := seen[key]; ok {
					t.Fatalf("duplicate output %v for inputs %d and %d", out, other, x)
				}
				seen[key] = x
			}
		})
	}
}

func TestFeistelNetworkDeterministic(t *testing.T) {
	n := big.NewInt(1_000_000)
	key := NewKeyFromUint64(12345)
	fn1, err := NewFeistelNetwork(n, key)
	if err != nil {
		t.Fatal(err)
	}
	fn2, err := NewFeistelNetwork(n, key)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []int64{0, 1, 2, 12345, 999999} {
		a := fn1.Permute(big.NewInt(x))
		b := fn2.Permute(big.NewInt(x))
		if a.Cmp(b) != 0 {
			t.Fatalf("x=%d: %v != %v", x, a, b)
		}
	}
}

func TestFeistelNetworkKeyChangesOutput(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 8)
	fn0, err := NewFeistelNetwork(n, NewKeyFromUint64(0))
	if err != nil {
		t.Fatal(err)
	}
	fn1, err := NewFeistelNetwork(n, NewKeyFromUint64(1))
	if err != nil {
		t.Fatal(err)
	}
	differs := false
	for x := int64(0); x < 256; x++ {
		if fn0.Permute(big.NewInt(x)).Cmp(fn1.Permute(big.NewInt(x))) != 0 {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatal("key=0 and key=1 produced identical permutations over all 256 inputs")
	}
}

func TestWithRoundsOverridesDefault(t *testing.T) {
	fn, err := NewFeistelNetwork(big.NewInt(1000), NewKeyFromUint64(1), WithRounds(20))
	if err != nil {
		t.Fatal(err)
	}
	if fn.Rounds() != 20 {
		t.Fatalf("rounds = %d, want 20", fn.Rounds())
	}
}

func TestWithRoundsRejectsOutOfInvariantValues(t *testing.T) {
	if _, err := NewFeistelNetwork(big.NewInt(1000), NewKeyFromUint64(1), WithRounds(4)); err != ErrInvalidRounds {
		t.Fatalf("got %v, want ErrInvalidRounds", err)
	}
	if _, err := NewFeistelNetwork(big.NewInt(1000), NewKeyFromUint64(1), WithRounds(64)); err != ErrInvalidRounds {
		t.Fatalf("got %v, want ErrInvalidRounds", err)
	}
}

func FuzzFeistelNetworkSelfInverse(f *testing.F) {
	f.Add(int64(16), uint64(1))
	f.Add(int64(1), uint64(0))
	f.Add(int64(1_000_000), uint64(42))
	f.Fuzz(func(t *testing.T, n int64, key uint64) {
		if n <= 0 {
			t.Skip()
		}
		fn, err := NewFeistelNetwork(big.NewInt(n), NewKeyFromUint64(key))
		if err != nil {
			t.Fatal(err)
		}
		domain := fn.Domain()
		x := new(big.Int).Mod(big.NewInt(n), domain)
		y := fn.Permute(new(big.Int).Set(x))
		back := fn.Invert(y)
		if back.Cmp(x) != 0 {
			t.Fatalf("invert(permute(%v)) = %v, want %v", x, back, x)
		}
	})
}
