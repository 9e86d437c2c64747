package service

import (
	"context"
	"errors"
	"time"

	"cantina/internal/model"
	"cantina/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSectorNotFound  = errors.New("setor não encontrado")
	ErrItemNotFound    = errors.New("item de checklist não encontrado")
	ErrPhotoRequired   = errors.New("esta tarefa exige foto para ser concluída")
	ErrConfirmRequired = errors.New("desmarcar exige confirmação")
)

// ToggleInput carries the optional attachments of a completion toggle.
// PhotoURL is mandatory when the referenced task requires a photo;
// ConfirmUnmark must be set to move a completed item back to pending.
type ToggleInput struct {
	PhotoURL      string
	Note          string
	ConfirmUnmark bool
}

type ChecklistService interface {
	// GenerateDaily materializes today's checklist for a sector: one pending
	// item per task template active on today's weekday. A day that already
	// has items for the sector is frozen — the existing items are returned
	// unchanged regardless of later template edits.
	GenerateDaily(ctx context.Context, sectorID string) ([]model.ChecklistItem, error)

	// Toggle flips a checklist item between pending and completed on behalf
	// of actorID, enforcing the photo and unmark-confirmation gates.
	Toggle(ctx context.Context, actorID, itemID string, in ToggleInput) (*model.ChecklistItem, error)

	List(ctx context.Context) ([]model.ChecklistItem, error)
}

type checklistService struct {
	sectors    repository.SectorRepository
	tasks      repository.TaskRepository
	checklists repository.ChecklistRepository
	now        func() time.Time
}

func NewChecklistService(sectors repository.SectorRepository, tasks repository.TaskRepository, checklists repository.ChecklistRepository) ChecklistService {
	return &checklistService{sectors: sectors, tasks: tasks, checklists: checklists, now: time.Now}
}

const dayFormat = "2006-01-02"

func (s *checklistService) GenerateDaily(ctx context.Context, sectorID string) ([]model.ChecklistItem, error) {
	sector, err := s.sectors.FindByID(ctx, sectorID)
	if err != nil {
		return nil, err
	}
	if sector == nil {
		return nil, ErrSectorNotFound
	}

	// "Today" is pinned once, from the local clock at call time. A call
	// straddling midnight keeps the day it started with.
	now := s.now()
	dayStart := model.DayStart(now)
	weekday := model.WeekdayOf(now)

	tasks, err := s.tasks.ListBySector(ctx, sectorID)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.ChecklistItem, 0, len(tasks))
	for _, t := range tasks {
		if !t.ActiveOn(weekday) {
			continue
		}
		candidates = append(candidates, model.ChecklistItem{
			ID:        uuid.NewString(),
			SectorID:  sectorID,
			Type:      t.Type,
			Date:      dayStart,
			TaskID:    t.ID,
			Completed: false,
			CreatedAt: now,
		})
	}

	existing, created, err := s.checklists.InsertDay(ctx, sectorID, dayStart, candidates)
	if err != nil {
		return nil, err
	}
	if !created {
		return existing, nil
	}

	log.Info().
		Str("sector_id", sectorID).
		Str("date", dayStart.Format(dayFormat)).
		Int("items", len(candidates)).
		Msg("daily checklist materialized")
	return candidates, nil
}

func (s *checklistService) Toggle(ctx context.Context, actorID, itemID string, in ToggleInput) (*model.ChecklistItem, error) {
	item, err := s.checklists.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if item.Completed {
		// completed → pending: explicit confirmation, then every completion
		// field goes back to unset.
		if !in.ConfirmUnmark {
			return nil, ErrConfirmRequired
		}
		item.Completed = false
		item.CompletedAt = nil
		item.CompletedByUserID = nil
		item.PhotoURL = nil
		item.Note = nil
	} else {
		// pending → completed. The photo gate follows the task template; an
		// orphaned template (deleted after materialization) gates nothing.
		task, err := s.tasks.FindByID(ctx, item.TaskID)
		if err != nil {
			return nil, err
		}
		if task != nil && task.RequiresPhoto && in.PhotoURL == "" {
			return nil, ErrPhotoRequired
		}

		completedAt := s.now()
		item.Completed = true
		item.CompletedAt = &completedAt
		item.CompletedByUserID = &actorID
		if in.PhotoURL != "" {
			photo := in.PhotoURL
			item.PhotoURL = &photo
		}
		if in.Note != "" {
			note := in.Note
			item.Note = &note
		}
	}

	if err := s.checklists.Save(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *checklistService) List(ctx context.Context) ([]model.ChecklistItem, error) {
	return s.checklists.List(ctx)
}
