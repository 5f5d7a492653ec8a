package permutation

// defaultKeyXORConstant is XORed into a 64-bit user key before expansion
// when key-XOR is enabled, to avoid low-entropy keys (0, 1, small counters)
// mapping directly onto the low bits of the expanded Key. It's the
// well-known 64-bit golden-ratio constant, a cheap fixed mixing value.
const defaultKeyXORConstant uint64 = 0x9E3779B97F4A7C15

// config collects the optional, non-default parameters a Permutor or
// FeistelNetwork can be built with.
type config struct {
	rounds      int
	xorConstant *uint64
}

// Option configures construction of a FeistelNetwork or Permutor.
type Option func(*config) error

// WithRounds overrides the derived round count with an explicit one. Valid
// range is [8, 32]: fewer rounds leave visible structural bias, more buy
// little extra mixing for the added cost.
func WithRounds(rounds int) Option {
	return func(c *config) error {
		if rounds < 8 || rounds > 32 {
			return ErrInvalidRounds
		}
		c.rounds = rounds
		return nil
	}
}

// WithKeyXORConstant enables the source variant that XORs a 64-bit user
// key with the given constant before expanding it to a full Key. It has no
// effect on constructors that take a full 256-bit Key directly.
func WithKeyXORConstant(constant uint64) Option {
	return func(c *config) error {
		v := constant
		c.xorConstant = &v
		return nil
	}
}

// WithDefaultKeyXOR enables key-XOR using the package's default constant.
func WithDefaultKeyXOR() Option {
	return WithKeyXORConstant(defaultKeyXORConstant)
}

func newConfig(opts []Option) (config, error) {
	var c config
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}
