package migrate

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Action names a single operation performed by Apply.
type Action string

const (
	ActionRemove Action = "remove"
	ActionWrite  Action = "write"
	ActionKeep   Action = "keep"
	ActionSkip   Action = "skip"
)

// Result is the outcome of one operation. Err is nil on success.
type Result struct {
	Action Action
	Path   string
	Err    error
}

// Report aggregates the results of Apply in the order they happened.
type Report struct {
	Results []Result
}

func (r *Report) add(a Action, path string, err error) {
	r.Results = append(r.Results, Result{Action: a, Path: path, Err: err})
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Succeeded returns the paths of successful operations of the given action.
func (r *Report) Succeeded(a Action) []string {
	var paths []string
	for _, res := range r.Results {
		if res.Action == a && res.Err == nil {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

// Removed returns the names that were successfully removed.
func (r *Report) Removed() []string {
	return r.Succeeded(ActionRemove)
}

// Written returns the names that were successfully written.
func (r *Report) Written() []string {
	return r.Succeeded(ActionWrite)
}

// Err combines every failed operation into one error, or returns nil.
func (r *Report) Err() error {
	var merr *multierror.Error
	for _, res := range r.Failed() {
		merr = multierror.Append(merr, fmt.Errorf("%s %s: %w", res.Action, res.Path, res.Err))
	}
	if merr == nil {
		return nil
	}
	merr.ErrorFormat = func(errs []error) string {
		return fmt.Sprintf("%d operation(s) failed", len(errs))
	}
	return merr
}
