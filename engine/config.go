package engine

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/search"
)

// DefaultUnitDelay is the per-step reveal delay used when none is configured.
const DefaultUnitDelay = 100 * time.Millisecond

// Config holds the scheduling parameters of an Engine.
//   - UnitDelay: delay unit handed to the animation policy (≥ 0).
//   - Policies:  animation policy per algorithm; algorithms missing from the
//     map fall back to animate.PolicyIndex.
type Config struct {
	UnitDelay time.Duration
	Policies  map[search.Algorithm]animate.Policy

	// internal error recorded during option parsing
	err error
}

// Option configures an Engine via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given:
//   - UnitDelay = DefaultUnitDelay
//   - BFS, A* → animate.PolicyIndex
//   - DFS     → animate.PolicyCoordinateSum
func DefaultConfig() Config {
	return Config{
		UnitDelay: DefaultUnitDelay,
		Policies: map[search.Algorithm]animate.Policy{
			search.AlgorithmBFS:   animate.PolicyIndex,
			search.AlgorithmDFS:   animate.PolicyCoordinateSum,
			search.AlgorithmAStar: animate.PolicyIndex,
		},
	}
}

// WithUnitDelay sets the per-step delay. d < 0 is an option violation.
func WithUnitDelay(d time.Duration) Option {
	return func(c *Config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: unit delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		c.UnitDelay = d
	}
}

// WithPolicy selects the animation policy for alg.
func WithPolicy(alg search.Algorithm, p animate.Policy) Option {
	return func(c *Config) {
		switch p {
		case animate.PolicyIndex, animate.PolicyCoordinateSum:
		default:
			c.err = fmt.Errorf("%w: %v", ErrOptionViolation, p)
			return
		}
		c.Policies[alg] = p
	}
}

// PolicyFor returns the policy configured for alg.
func (c Config) PolicyFor(alg search.Algorithm) animate.Policy {
	if p, ok := c.Policies[alg]; ok {
		return p
	}

	return animate.PolicyIndex
}

// clone copies c so callers cannot alias the engine's policy map.
func (c Config) clone() Config {
	out := c
	out.Policies = make(map[search.Algorithm]animate.Policy, len(c.Policies))
	for k, v := range c.Policies {
		out.Policies[k] = v
	}

	return out
}
