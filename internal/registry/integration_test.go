//go:build integration

package registry_test

import (
	"context"
	"testing"

	r "github.com/notifique/alert/internal/testutils/registry"
)

func TestRegistryPostgres(t *testing.T) {

	ctx := context.Background()
	tester, close, err := r.NewPostgresRegistryTester(ctx)

	if err != nil {
		t.Fatal("failed to init postgres tester - ", err)
	}

	defer close()

	testPreferences(ctx, t, tester)
	testAlerts(ctx, t, tester)
}

func TestRegistryDynamo(t *testing.T) {

	ctx := context.Background()
	tester, close, err := r.NewDynamoRegistryTester(ctx)

	if err != nil {
		t.Fatal("failed to init dynamo tester - ", err)
	}

	defer close()

	testPreferences(ctx, t, tester)
	testAlerts(ctx, t, tester)
}
