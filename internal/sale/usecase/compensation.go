package usecase

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/pkg/logger"
	"go.uber.org/zap"
)

type undoStep struct {
	name string
	fn   func(ctx context.Context) error
}

// compensations records the inverse of each applied write so a commit on a
// non-transactional backend can be unwound.
type compensations struct {
	steps []undoStep
}

func (c *compensations) add(name string, fn func(ctx context.Context) error) {
	c.steps = append(c.steps, undoStep{name: name, fn: fn})
}

// run undoes every step in reverse order. Failures are logged and do not
// stop the remaining steps.
func (c *compensations) run(ctx context.Context, log logger.ZapLogger) {
	for i := len(c.steps) - 1; i >= 0; i-- {
		if err := c.steps[i].fn(ctx); err != nil {
			log.Error("compensation step failed", zap.String("step", c.steps[i].name), zap.Error(err))
		}
	}
	c.steps = nil
}
