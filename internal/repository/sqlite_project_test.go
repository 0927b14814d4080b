package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/shopfloor/internal/domain"
	"github.com/alexanderramin/shopfloor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	deadline := testutil.Date(2025, 3, 10)
	delivery := testutil.Date(2025, 4, 1)
	proj := testutil.NewTestProject("Hanwha",
		testutil.WithPeople("Kim", "Lee"),
		testutil.WithDeliveryDate(delivery),
		testutil.WithItems(
			testutil.NewTestItem("BOM", testutil.WithDeadline(deadline, 5), testutil.WithOrderIndex(0)),
			testutil.NewTestItem("Drawing", testutil.WithOrderIndex(1)),
		),
	)
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hanwha", fetched.Vendor)
	assert.Equal(t, "Kim", fetched.PM)
	assert.Equal(t, domain.StagePendingInspection, fetched.ProcessStage)
	assert.Nil(t, fetched.FATDate)
	require.NotNil(t, fetched.DeliveryDate)
	assert.Equal(t, "2025-04-01", domain.FormatDate(fetched.DeliveryDate))

	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "BOM", fetched.Items[0].Name)
	assert.Equal(t, proj.ID, fetched.Items[0].ProjectID)
	assert.Equal(t, 5, fetched.Items[0].WarningDays)
	require.NotNil(t, fetched.Items[0].Deadline)
	assert.True(t, deadline.Equal(*fetched.Items[0].Deadline))
	assert.Nil(t, fetched.Items[1].Deadline)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	a := testutil.NewTestProject("Hanwha", testutil.WithPeople("Kim", "Park"))
	b := testutil.NewTestProject("Doosan", testutil.WithStage(domain.StageConfirmedShipment), testutil.WithPeople("Choi", "Kim"))
	c := testutil.NewTestProject("Hyundai", testutil.WithStage(domain.StageConfirmedShipment),
		testutil.WithItems(testutil.NewTestItem("BOM")))
	for _, p := range []*domain.Project{a, b, c} {
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.List(ctx, ProjectFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	shipping, err := repo.List(ctx, ProjectFilter{Stage: domain.StageConfirmedShipment})
	require.NoError(t, err)
	assert.Len(t, shipping, 2)

	kim, err := repo.List(ctx, ProjectFilter{Search: "KIM"})
	require.NoError(t, err)
	assert.Len(t, kim, 2)

	both, err := repo.List(ctx, ProjectFilter{Stage: domain.StageConfirmedShipment, Search: "kim"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, b.ID, both[0].ID)

	hy, err := repo.List(ctx, ProjectFilter{Search: "hyundai"})
	require.NoError(t, err)
	require.Len(t, hy, 1)
	assert.Len(t, hy[0].Items, 1, "list loads items")

	none, err := repo.List(ctx, ProjectFilter{Search: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectRepo_UpdateReplacesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Hanwha", testutil.WithItems(
		testutil.NewTestItem("BOM"),
		testutil.NewTestItem("Drawing", testutil.WithOrderIndex(1)),
	))
	require.NoError(t, repo.Create(ctx, proj))

	proj.HealthStatus = domain.HealthDelayed
	proj.ProcessStage = domain.StageInspectionCompleted
	proj.Items = []domain.ManagementItem{proj.Items[1], testutil.NewTestItem("Program", testutil.WithOrderIndex(2))}
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HealthDelayed, fetched.HealthStatus)
	assert.Equal(t, domain.StageInspectionCompleted, fetched.ProcessStage)
	require.Len(t, fetched.Items, 2)
	assert.Equal(t, "Drawing", fetched.Items[0].Name)
	assert.Equal(t, "Program", fetched.Items[1].Name)
}

func TestProjectRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))
	err := repo.Update(context.Background(), testutil.NewTestProject("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_DeleteCascadesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	items := NewSQLiteManagementItemRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Hanwha", testutil.WithItems(testutil.NewTestItem("BOM")))
	require.NoError(t, repo.Create(ctx, proj))

	require.NoError(t, repo.Delete(ctx, proj.ID))
	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = items.GetByID(ctx, proj.Items[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, proj.ID), ErrNotFound)
}

func TestProjectRepo_DeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("A", testutil.WithItems(testutil.NewTestItem("BOM")))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestProject("B")))
	require.NoError(t, repo.DeleteAll(ctx))

	all, err := repo.List(ctx, ProjectFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}
