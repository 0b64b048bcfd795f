// Package registrytest starts the registries against real databases for
// the registry test suites.
package registrytest

import (
	"context"
	"fmt"
	"testing"
)

type ContainerTester interface {
	ClearDB(ctx context.Context) error
}

type closer func()

func Clear(ctx context.Context, t *testing.T, ct ContainerTester) {
	err := ct.ClearDB(ctx)

	if err != nil {
		t.Fatal(fmt.Errorf("failed to clear the database - %w", err))
	}
}
