package service

import (
	"context"

	"cantina/internal/dto"
	"cantina/internal/model"
	"cantina/internal/repository"
)

// Narrator turns aggregate stats into a prose summary. Implementations must
// degrade to a fallback string instead of returning an error — narration is
// decoration, never a failure mode for the report itself.
type Narrator interface {
	Narrate(ctx context.Context, stats dto.ReportStats) string
}

type ReportService interface {
	Stats(ctx context.Context) (*dto.ReportStats, error)
	Insights(ctx context.Context) (string, error)
}

type reportService struct {
	sectors    repository.SectorRepository
	checklists repository.ChecklistRepository
	narrator   Narrator
}

func NewReportService(sectors repository.SectorRepository, checklists repository.ChecklistRepository, narrator Narrator) ReportService {
	return &reportService{sectors: sectors, checklists: checklists, narrator: narrator}
}

func (s *reportService) Stats(ctx context.Context) (*dto.ReportStats, error) {
	sectors, err := s.sectors.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.checklists.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ReportStats{TotalItems: len(items)}

	for _, sec := range sectors {
		total, completed := 0, 0
		for _, it := range items {
			if it.SectorID != sec.ID {
				continue
			}
			total++
			if it.Completed {
				completed++
			}
		}
		percent := 0
		if total > 0 {
			percent = int(float64(completed)/float64(total)*100 + 0.5)
		}
		stats.Sectors = append(stats.Sectors, dto.SectorStat{
			Name:    sec.Name,
			Percent: percent,
			Color:   "#" + sec.Color,
		})
	}

	for _, typ := range []model.TaskType{model.TypeOpening, model.TypeGeneral, model.TypeClosing} {
		count := 0
		for _, it := range items {
			if it.Type == typ && it.Completed {
				count++
			}
		}
		stats.Types = append(stats.Types, dto.TypeStat{Type: string(typ), Count: count})
	}

	return stats, nil
}

func (s *reportService) Insights(ctx context.Context) (string, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return "", err
	}
	return s.narrator.Narrate(ctx, *stats), nil
}
