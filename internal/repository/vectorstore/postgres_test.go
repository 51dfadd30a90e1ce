package vectorstore

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"pgvector/pgvector:pg17",
		postgres.WithDatabase("supportdesk"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	return dsn
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, dsn, "")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer s.Close()

	empty, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty store, got %d", len(empty))
	}

	want := sampleRecords()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	if err := s.Save(ctx, want[2:]); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("load after overwrite: %v", err)
	}
	if len(got) != 1 || got[0].ID != "policy-1" {
		t.Errorf("expected whole-table replace, got %+v", got)
	}
}

func TestPostgresStore_FacadeTopK(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	pg, err := NewPostgresStore(ctx, dsn, "store_topk")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer pg.Close()

	s := New(pg, nil)
	if err := s.Save(ctx, sampleRecords()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.TopK(ctx, []float32{0, 1, 0}, 1)
	if err != nil {
		t.Fatalf("topk: %v", err)
	}
	if len(got) != 1 || got[0].ID != "product-1" {
		t.Errorf("expected product-1, got %+v", got)
	}
}
