package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"cantina/internal/model"
	"cantina/internal/repository"
	"cantina/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv wires real repositories over a throwaway file store so the whole
// read-modify-write path is exercised, not a fake.
type testEnv struct {
	sectors    repository.SectorRepository
	tasks      repository.TaskRepository
	checklists repository.ChecklistRepository
	svc        *checklistService
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		sectors:    repository.NewSectorRepository(st),
		tasks:      repository.NewTaskRepository(st),
		checklists: repository.NewChecklistRepository(st),
	}
	env.svc = NewChecklistService(env.sectors, env.tasks, env.checklists).(*checklistService)
	env.svc.now = func() time.Time { return now }
	return env
}

func (e *testEnv) addSector(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, e.sectors.Save(context.Background(), model.Sector{
		ID:        id,
		Name:      "Cozinha",
		Color:     "FF6B6B",
		Icon:      model.IconRestaurant,
		CreatedAt: time.Now(),
	}))
}

func (e *testEnv) addTask(t *testing.T, sectorID string, days []model.Weekday, requiresPhoto bool) model.Task {
	t.Helper()
	task := model.Task{
		ID:            uuid.NewString(),
		SectorID:      sectorID,
		Type:          model.TypeOpening,
		Title:         "Ligar os fornos",
		DaysOfWeek:    days,
		RequiresPhoto: requiresPhoto,
	}
	require.NoError(t, e.tasks.Save(context.Background(), task))
	return task
}

// 2026-08-31 is a Monday.
var (
	monday  = time.Date(2026, 8, 31, 9, 30, 0, 0, time.Local)
	tuesday = monday.AddDate(0, 0, 1)
)

func TestGenerateDailyCoverage(t *testing.T) {
	ctx := context.Background()

	t.Run("monday materializes monday and everyday tasks", func(t *testing.T) {
		env := newTestEnv(t, monday)
		env.addSector(t, "setor_001")
		t1 := env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)
		t2 := env.addTask(t, "setor_001", []model.Weekday{
			model.Mon, model.Tue, model.Wed, model.Thu, model.Fri, model.Sat, model.Sun,
		}, false)

		items, err := env.svc.GenerateDaily(ctx, "setor_001")
		require.NoError(t, err)
		require.Len(t, items, 2)

		got := map[string]bool{}
		for _, it := range items {
			got[it.TaskID] = true
			assert.False(t, it.Completed)
			assert.Nil(t, it.CompletedAt)
			assert.Nil(t, it.CompletedByUserID)
			assert.Nil(t, it.PhotoURL)
			assert.Nil(t, it.Note)
			assert.True(t, it.Date.Equal(model.DayStart(monday)))
		}
		assert.True(t, got[t1.ID])
		assert.True(t, got[t2.ID])
	})

	t.Run("tuesday materializes only everyday task", func(t *testing.T) {
		env := newTestEnv(t, tuesday)
		env.addSector(t, "setor_001")
		env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)
		t2 := env.addTask(t, "setor_001", []model.Weekday{
			model.Mon, model.Tue, model.Wed, model.Thu, model.Fri, model.Sat, model.Sun,
		}, false)

		items, err := env.svc.GenerateDaily(ctx, "setor_001")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, t2.ID, items[0].TaskID)
	})
}

func TestGenerateDailyIdempotent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")
	env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)

	first, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)
	second, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestGenerateDailyFrozenDay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")
	env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)

	first, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A template added later the same day must NOT appear: the day is frozen.
	late := env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)

	again, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, first[0].ID, again[0].ID)
	assert.NotEqual(t, late.ID, again[0].TaskID)
}

func TestGenerateDailyEmptyTaskList(t *testing.T) {
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")

	items, err := env.svc.GenerateDaily(context.Background(), "setor_001")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGenerateDailyUnknownSector(t *testing.T) {
	env := newTestEnv(t, monday)
	_, err := env.svc.GenerateDaily(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSectorNotFound)
}

func TestGenerateDailyConcurrentCallsNoDuplicates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")
	env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)
	env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.svc.GenerateDaily(ctx, "setor_001")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := env.checklists.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2, "racing materializations must not duplicate items")
}

func TestToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")
	env.addTask(t, "setor_001", []model.Weekday{model.Mon}, false)

	items, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)
	require.Len(t, items, 1)

	done, err := env.svc.Toggle(ctx, "user_001", items[0].ID, ToggleInput{})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, monday, *done.CompletedAt)
	require.NotNil(t, done.CompletedByUserID)
	assert.Equal(t, "user_001", *done.CompletedByUserID)

	// Unmark without confirmation is rejected and changes nothing.
	_, err = env.svc.Toggle(ctx, "user_001", items[0].ID, ToggleInput{})
	assert.ErrorIs(t, err, ErrConfirmRequired)

	undone, err := env.svc.Toggle(ctx, "user_001", items[0].ID, ToggleInput{ConfirmUnmark: true})
	require.NoError(t, err)
	assert.False(t, undone.Completed)
	assert.Nil(t, undone.CompletedAt)
	assert.Nil(t, undone.CompletedByUserID)
	assert.Nil(t, undone.PhotoURL)
	assert.Nil(t, undone.Note)
}

func TestTogglePhotoGating(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")
	env.addTask(t, "setor_001", []model.Weekday{model.Mon}, true)

	items, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Without a photo the item must stay pending.
	_, err = env.svc.Toggle(ctx, "user_001", items[0].ID, ToggleInput{})
	assert.ErrorIs(t, err, ErrPhotoRequired)

	still, err := env.checklists.FindByID(ctx, items[0].ID)
	require.NoError(t, err)
	assert.False(t, still.Completed)

	done, err := env.svc.Toggle(ctx, "user_001", items[0].ID, ToggleInput{
		PhotoURL: "https://fotos.cantina.com/forno.jpg",
		Note:     "Forno limpo",
	})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.PhotoURL)
	assert.Equal(t, "https://fotos.cantina.com/forno.jpg", *done.PhotoURL)
	require.NotNil(t, done.Note)
	assert.Equal(t, "Forno limpo", *done.Note)
}

func TestToggleOrphanedTemplate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, monday)
	env.addSector(t, "setor_001")
	task := env.addTask(t, "setor_001", []model.Weekday{model.Mon}, true)

	items, err := env.svc.GenerateDaily(ctx, "setor_001")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Template deleted after materialization: the item survives and the
	// photo gate no longer applies.
	require.NoError(t, env.tasks.Delete(ctx, task.ID))

	done, err := env.svc.Toggle(ctx, "user_001", items[0].ID, ToggleInput{})
	require.NoError(t, err)
	assert.True(t, done.Completed)
}

func TestToggleUnknownItem(t *testing.T) {
	env := newTestEnv(t, monday)
	_, err := env.svc.Toggle(context.Background(), "user_001", "missing", ToggleInput{})
	assert.ErrorIs(t, err, ErrItemNotFound)
}
