package tutorials

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// Tutorial is one worked example: a flat sequence of define problem, call a
// solver, inspect the result, narrated to the writer.
type Tutorial struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, w io.Writer) error
}

var registry = map[string]Tutorial{}

func register(t Tutorial) {
	registry[t.Name] = t
}

func Get(name string) (Tutorial, error) {
	t, ok := registry[name]
	if !ok {
		return Tutorial{}, fmt.Errorf("unknown tutorial: %s", name)
	}
	return t, nil
}

func All() []Tutorial {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Tutorial, 0, len(names))
	for _, name := range names {
		out = append(out, registry[name])
	}
	return out
}
