package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/shopfloor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite checks that project listings stay
// consistent while another goroutine inserts projects with items. WAL mode
// allows concurrent readers next to the single writer (the serve command).
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteProjectRepo(database)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			p := testutil.NewTestProject(fmt.Sprintf("Vendor-%d", i),
				testutil.WithItems(testutil.NewTestItem("BOM")))
			if err := repo.Create(ctx, p); err != nil {
				t.Errorf("writer: create project %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				projects, err := repo.List(ctx, ProjectFilter{})
				if err != nil {
					t.Errorf("reader %d: list projects: %v", reader, err)
					return
				}
				for _, p := range projects {
					if p.ID == "" || p.Vendor == "" {
						t.Errorf("reader %d: got project with empty fields", reader)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	projects, err := repo.List(ctx, ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, projects, 20)
	for _, p := range projects {
		assert.Len(t, p.Items, 1)
	}
}

func TestConcurrentAccess_ConcurrentReaders(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	ctx := context.Background()
	tasks := NewSQLiteTaskRepo(database)

	const taskCount = 10
	for i := 0; i < taskCount; i++ {
		require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(fmt.Sprintf("Task-%d", i), testutil.WithPosition(i))))
	}

	var wg sync.WaitGroup
	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			list, err := tasks.List(ctx)
			if err != nil {
				t.Errorf("reader %d: list tasks: %v", reader, err)
				return
			}
			if len(list) != taskCount {
				t.Errorf("reader %d: expected %d tasks, got %d", reader, taskCount, len(list))
			}
		}(r)
	}
	wg.Wait()
}
