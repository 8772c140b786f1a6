package tally

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Option customizes CountAll.
type Option func(*config)

type config struct {
	workers int
	log     logrus.FieldLogger
}

// defaultConfig runs one worker per CPU and discards log output.
func defaultConfig() config {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return config{
		workers: runtime.GOMAXPROCS(0),
		log:     l,
	}
}

// WithWorkers bounds the number of requests counted at the same time.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("tally: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger routes per-request log entries to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("tally: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}
