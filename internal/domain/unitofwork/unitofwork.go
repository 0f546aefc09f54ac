// Package unitofwork describes a storage independent transactional boundary.
// A unit runs an ordered list of named steps against repositories bound to
// one transaction and either commits all of their writes or none.
package unitofwork

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-schedule/internal/domain/event"
	"github.com/riskibarqy/sports-schedule/internal/domain/league"
	"github.com/riskibarqy/sports-schedule/internal/domain/team"
)

// ErrUnavailable is returned when the store refuses to start a unit.
var ErrUnavailable = errors.New("unit of work unavailable")

// Repositories are scoped to a single unit and must not escape it.
type Repositories struct {
	Leagues league.Repository
	Teams   team.Repository
	Events  event.Repository
}

// Step is one ordered operation inside a unit.
type Step struct {
	Name string
	Run  func(ctx context.Context, repos Repositories) error
}

type UnitOfWork interface {
	Run(ctx context.Context, name string, steps ...Step) error
}

// Execute runs steps in order on repos. It stops at the first failure and
// checks ctx before each step. Implementations call it between begin and
// commit.
func Execute(ctx context.Context, name string, repos Repositories, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "%s: cancelled before step %q", name, step.Name)
		}
		if step.Run == nil {
			return errors.Newf("%s: step %d (%q) has no run func", name, i, step.Name)
		}
		if err := step.Run(ctx, repos); err != nil {
			return errors.Wrapf(err, "%s: step %q", name, step.Name)
		}
	}
	return nil
}

// StepNames lists step names in execution order.
func StepNames(steps []Step) []string {
	names := make([]string, 0, len(steps))
	for _, step := range steps {
		names = append(names, step.Name)
	}
	return names
}

// Func adapts a function to UnitOfWork.
type Func func(ctx context.Context, name string, steps ...Step) error

func (f Func) Run(ctx context.Context, name string, steps ...Step) error {
	if f == nil {
		return fmt.Errorf("%w: no unit of work configured", ErrUnavailable)
	}
	return f(ctx, name, steps...)
}
