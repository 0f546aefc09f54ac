package unitofwork

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var ran []string
	step := func(name string) Step {
		return Step{Name: name, Run: func(context.Context, Repositories) error {
			ran = append(ran, name)
			return nil
		}}
	}

	steps := []Step{step("first"), step("second"), step("third")}
	require.NoError(t, Execute(context.Background(), "ordered", Repositories{}, steps))
	assert.Equal(t, []string{"first", "second", "third"}, ran)
	assert.Equal(t, ran, StepNames(steps))
}

func TestExecute_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	steps := []Step{
		{Name: "ok", Run: func(context.Context, Repositories) error { ran = append(ran, "ok"); return nil }},
		{Name: "fails", Run: func(context.Context, Repositories) error { ran = append(ran, "fails"); return boom }},
		{Name: "never", Run: func(context.Context, Repositories) error { ran = append(ran, "never"); return nil }},
	}

	err := Execute(context.Background(), "delete-team", Repositories{}, steps)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `delete-team: step "fails"`)
	assert.Equal(t, []string{"ok", "fails"}, ran)
}

func TestExecute_ChecksContextBetweenSteps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ran []string
	steps := []Step{
		{Name: "cancel", Run: func(context.Context, Repositories) error { ran = append(ran, "cancel"); cancel(); return nil }},
		{Name: "after", Run: func(context.Context, Repositories) error { ran = append(ran, "after"); return nil }},
	}

	err := Execute(ctx, "delete-league", Repositories{}, steps)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"cancel"}, ran)
}

func TestExecute_RejectsStepWithoutRun(t *testing.T) {
	err := Execute(context.Background(), "broken", Repositories{}, []Step{{Name: "empty"}})
	assert.Error(t, err)
}

func TestFunc_NilIsUnavailable(t *testing.T) {
	var f Func
	assert.ErrorIs(t, f.Run(context.Background(), "x"), ErrUnavailable)
}
