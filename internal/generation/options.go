package generation

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("generation: WithRand(nil)")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed seeds a fresh *rand.Rand, for reproducible output.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = NewRand(seed)
	}
}

// WithPolicy replaces the default policy.
func WithPolicy(p Policy) Option {
	return func(g *Generator) {
		g.policy = p.normalized()
	}
}

// WithObserver sets the step observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("generation: WithObserver(nil)")
	}
	return func(g *Generator) {
		g.observer = o
	}
}
