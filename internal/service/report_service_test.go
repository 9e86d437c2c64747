package service

import (
	"context"
	"testing"
	"time"

	"cantina/internal/dto"
	"cantina/internal/model"
	"cantina/internal/repository"
	"cantina/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNarrator struct {
	got  *dto.ReportStats
	text string
}

func (n *stubNarrator) Narrate(_ context.Context, stats dto.ReportStats) string {
	n.got = &stats
	return n.text
}

func newReportEnv(t *testing.T) (ReportService, repository.SectorRepository, repository.ChecklistRepository, *stubNarrator) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	sectors := repository.NewSectorRepository(st)
	checklists := repository.NewChecklistRepository(st)
	narrator := &stubNarrator{text: "Resumo."}
	return NewReportService(sectors, checklists, narrator), sectors, checklists, narrator
}

func item(id, sectorID string, typ model.TaskType, completed bool) model.ChecklistItem {
	return model.ChecklistItem{
		ID:        id,
		SectorID:  sectorID,
		Type:      typ,
		Date:      model.DayStart(time.Now()),
		TaskID:    "tarefa_" + id,
		Completed: completed,
		CreatedAt: time.Now(),
	}
}

func TestReportStats(t *testing.T) {
	ctx := context.Background()
	svc, sectors, checklists, _ := newReportEnv(t)

	require.NoError(t, sectors.Save(ctx, model.Sector{
		ID: "setor_001", Name: "Cozinha", Color: "FF6B6B", Icon: model.IconRestaurant, DisplayOrder: 1,
	}))
	require.NoError(t, sectors.Save(ctx, model.Sector{
		ID: "setor_002", Name: "Salão", Color: "4ECDC4", Icon: model.IconTable, DisplayOrder: 2,
	}))

	require.NoError(t, checklists.Save(ctx, item("1", "setor_001", model.TypeOpening, true)))
	require.NoError(t, checklists.Save(ctx, item("2", "setor_001", model.TypeOpening, true)))
	require.NoError(t, checklists.Save(ctx, item("3", "setor_001", model.TypeClosing, false)))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	require.Len(t, stats.Sectors, 2)
	assert.Equal(t, dto.SectorStat{Name: "Cozinha", Percent: 67, Color: "#FF6B6B"}, stats.Sectors[0])
	// A sector with no items reports 0%, not a division error.
	assert.Equal(t, dto.SectorStat{Name: "Salão", Percent: 0, Color: "#4ECDC4"}, stats.Sectors[1])

	require.Len(t, stats.Types, 3)
	assert.Equal(t, dto.TypeStat{Type: "opening", Count: 2}, stats.Types[0])
	assert.Equal(t, dto.TypeStat{Type: "general", Count: 0}, stats.Types[1])
	assert.Equal(t, dto.TypeStat{Type: "closing", Count: 0}, stats.Types[2])

	assert.Equal(t, 3, stats.TotalItems)
}

func TestReportInsightsPassesStatsToNarrator(t *testing.T) {
	ctx := context.Background()
	svc, sectors, checklists, narrator := newReportEnv(t)

	require.NoError(t, sectors.Save(ctx, model.Sector{
		ID: "setor_001", Name: "Cozinha", Color: "FF6B6B", Icon: model.IconRestaurant,
	}))
	require.NoError(t, checklists.Save(ctx, item("1", "setor_001", model.TypeGeneral, true)))

	text, err := svc.Insights(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Resumo.", text)
	require.NotNil(t, narrator.got)
	assert.Equal(t, 1, narrator.got.TotalItems)
}
