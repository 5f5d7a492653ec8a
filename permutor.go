package permutation

import (
	"iter"
	"math/big"
)

// Permutor wraps a FeistelNetwork with a user-visible capacity N and
// applies cycle-walking to expose a bijection on [0, N), plus a
// restartable sequential iterator over it. A Permutor holds exactly one
// FeistelNetwork; Clone shares it with the copy, which is safe because the
// network is immutable.
//
// Forward and Backward are pure functions of the underlying FeistelNetwork
// and are safe to call concurrently. The iterator cursor is mutable state
// and is not safe for concurrent mutation; concurrent readers that want
// independent iteration should each hold their own Clone.
type Permutor struct {
	feistel *FeistelNetwork
	max     *big.Int
	cursor  *big.Int
}

// NewPermutor constructs a Permutor over [0, n) using a full 256-bit key.
func NewPermutor(n *big.Int, key Key, opts ...Option) (*Permutor, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return newPermutor(n, key, cfg)
}

// NewPermutorFromUint64Key constructs a Permutor over [0, n) from a 64-bit
// key, expanded to 256 bits as described by Key. If WithKeyXORConstant (or
// WithDefaultKeyXOR) is supplied, the 64-bit key is XORed with that
// constant before expansion; by default no XOR is applied.
func NewPermutorFromUint64Key(n *big.Int, key uint64, opts ...Option) (*Permutor, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if cfg.xorConstant != nil {
		key ^= *cfg.xorConstant
	}
	return newPermutor(n, NewKeyFromUint64(key), cfg)
}

func newPermutor(n *big.Int, key Key, cfg config) (*Permutor, error) {
	if n.Sign() <= 0 {
		return nil, ErrInvalidCapacity
	}
	fn, err := newFeistelNetwork(n, key, cfg)
	if err != nil {
		return nil, err
	}
	return &Permutor{
		feistel: fn,
		max:     new(big.Int).Set(n),
		cursor:  big.NewInt(0),
	}, nil
}

// Len returns N, the capacity this Permutor was constructed with.
func (p *Permutor) Len() *big.Int {
	return new(big.Int).Set(p.max)
}

// Remaining returns how many values the iterator has left to yield.
func (p *Permutor) Remaining() *big.Int {
	return new(big.Int).Sub(p.max, p.cursor)
}

// Forward returns the k-th element of the permutation, k in [0, N). It
// does not read or mutate the iterator cursor.
func (p *Permutor) Forward(k *big.Int) (*big.Int, error) {
	if k.Sign() < 0 || k.Cmp(p.max) >= 0 {
		return nil, ErrOutOfRange
	}
	v := new(big.Int).Set(k)
	for {
		v = p.feistel.Permute(v)
		if v.Cmp(p.max) < 0 {
			return v, nil
		}
	}
}

// Backward returns the index k such that Forward(k) == v, v in [0, N).
func (p *Permutor) Backward(v *big.Int) (*big.Int, error) {
	if v.Sign() < 0 || v.Cmp(p.max) >= 0 {
		return nil, ErrOutOfRange
	}
	k := new(big.Int).Set(v)
	for {
		k = p.feistel.Invert(k)
		if k.Cmp(p.max) < 0 {
			return k, nil
		}
	}
}

// ForwardBatch applies Forward to every index in ks.
func (p *Permutor) ForwardBatch(ks []*big.Int) ([]*big.Int, error) {
	out := make([]*big.Int, len(ks))
	for i, k := range ks {
		v, err := p.Forward(k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BackwardBatch applies Backward to every value in vs.
func (p *Permutor) BackwardBatch(vs []*big.Int) ([]*big.Int, error) {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		k, err := p.Backward(v)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}

// Next advances the cursor and returns the next value in the permuted
// sequence, or ok == false once N values have been yielded.
func (p *Permutor) Next() (value *big.Int, ok bool) {
	if p.cursor.Cmp(p.max) >= 0 {
		return nil, false
	}
	v, err := p.Forward(p.cursor)
	if err != nil {
		// Unreachable: cursor is always in [0, max) here.
		return nil, false
	}
	p.cursor.Add(p.cursor, big.NewInt(1))
	return v, true
}

// Reset rewinds the iterator cursor to 0, producing a fresh iteration of
// the identical sequence.
func (p *Permutor) Reset() {
	p.cursor.SetInt64(0)
}

// Clone deep-copies the Permutor, including its current cursor position.
// The underlying FeistelNetwork is immutable and shared, not copied. The
// caller should call Reset on the clone if a fresh iteration is wanted.
func (p *Permutor) Clone() *Permutor {
	return &Permutor{
		feistel: p.feistel,
		max:     new(big.Int).Set(p.max),
		cursor:  new(big.Int).Set(p.cursor),
	}
}

// All returns a range-over-func iterator (stdlib iter.Seq) over the
// permuted sequence forward(0), forward(1), ..., forward(N-1). It does not
// read or mutate the Permutor's cursor, so it may be used alongside Next
// or from multiple goroutines.
func (p *Permutor) All() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		one := big.NewInt(1)
		i := big.NewInt(0)
		for i.Cmp(p.max) < 0 {
			v, err := p.Forward(i)
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
			i = new(big.Int).Add(i, one)
		}
	}
}
