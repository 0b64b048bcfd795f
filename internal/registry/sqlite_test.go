package registry_test

import (
	"context"
	"testing"

	r "github.com/notifique/alert/internal/testutils/registry"
)

func TestRegistrySQLite(t *testing.T) {

	ctx := context.Background()
	tester, close, err := r.NewSQLiteRegistryTester(ctx)

	if err != nil {
		t.Fatal("failed to init sqlite tester - ", err)
	}

	defer close()

	testPreferences(ctx, t, tester)
	testAlerts(ctx, t, tester)
}
