package responder

import (
	"math/rand/v2"
	"time"
)

// Default thinking-time bounds: replies wait a duration in [min, max).
const (
	DefaultDelayMin = 800 * time.Millisecond
	DefaultDelayMax = 1200 * time.Millisecond
)

// Sampler returns the thinking delay for one reply.
type Sampler func() time.Duration

// UniformDelay samples uniformly from [min, max). When max <= min every
// sample is min.
func UniformDelay(min, max time.Duration) Sampler {
	if max <= min {
		return FixedDelay(min)
	}
	span := max - min
	return func() time.Duration {
		return min + rand.N(span)
	}
}

// FixedDelay always waits d.
func FixedDelay(d time.Duration) Sampler {
	return func() time.Duration { return d }
}

// NoDelay replies immediately.
func NoDelay() Sampler {
	return FixedDelay(0)
}
