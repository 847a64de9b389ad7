package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/court-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// loadSchedule monta o documento lógico da agenda a partir das três
// tabelas. Quadra sem grade salva recebe a grade padrão.
func loadSchedule(
	ctx context.Context,
	db *gorm.DB,
	courtID string,
) (*domain.Schedule, error) {

	var hours []models.OperatingHour
	if err := db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Find(&hours).Error; err != nil {
		return nil, err
	}

	schedule := &domain.Schedule{
		OperatingHours: make(map[string]domain.DayHours, len(hours)),
	}

	if len(hours) == 0 {
		schedule.OperatingHours = domain.DefaultOperatingHours()
	} else {
		for _, h := range hours {
			schedule.OperatingHours[h.Weekday] = domain.DayHours{
				Open:   h.Open,
				Close:  h.Close,
				IsOpen: h.IsOpen,
			}
		}
	}

	if err := db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Find(&schedule.SpecialDates).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Where("court_id = ?", courtID).
		Find(&schedule.BlockedSlots).Error; err != nil {
		return nil, err
	}

	return schedule, nil
}

func (r *ScheduleGormRepository) GetSchedule(
	ctx context.Context,
	courtID string,
) (*domain.Schedule, error) {
	return loadSchedule(ctx, r.db, courtID)
}

// --------------------------------------------------
// Grade semanal
// --------------------------------------------------

func (r *ScheduleGormRepository) UpsertOperatingHour(
	ctx context.Context,
	courtID string,
	weekday string,
	hours domain.DayHours,
) error {

	oh := models.OperatingHour{
		CourtID: courtID,
		Weekday: weekday,
		Open:    hours.Open,
		Close:   hours.Close,
		IsOpen:  hours.IsOpen,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "court_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns(
				[]string{"open", "close", "is_open", "updated_at"},
			),
		}).
		Create(&oh).Error
}

// --------------------------------------------------
// Datas especiais
// --------------------------------------------------

// UpsertSpecialDate grava a exceção da data. Conflito na mesma data
// substitui a entrada inteira (last write wins).
func (r *ScheduleGormRepository) UpsertSpecialDate(
	ctx context.Context,
	sd *models.SpecialDate,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "court_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns(
				[]string{"is_closed", "reason", "open", "close", "updated_at"},
			),
		}).
		Create(sd).Error
}

func (r *ScheduleGormRepository) DeleteSpecialDate(
	ctx context.Context,
	courtID string,
	date string,
) error {

	return r.db.WithContext(ctx).
		Where("court_id = ? AND date = ?", courtID, date).
		Delete(&models.SpecialDate{}).Error
}

// --------------------------------------------------
// Bloqueios administrativos
// --------------------------------------------------

func (r *ScheduleGormRepository) UpsertBlockedSlot(
	ctx context.Context,
	bs *models.BlockedSlot,
) error {

	var existing models.BlockedSlot
	err := r.db.WithContext(ctx).
		Where(
			"court_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			bs.CourtID, bs.Date, bs.StartTime, bs.EndTime,
		).
		First(&existing).Error

	if err == nil {
		existing.Reason = bs.Reason
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.WithContext(ctx).Create(bs).Error
}

func (r *ScheduleGormRepository) DeleteBlockedSlot(
	ctx context.Context,
	courtID string,
	date string,
	startTime string,
	endTime string,
) error {

	return r.db.WithContext(ctx).
		Where(
			"court_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			courtID, date, startTime, endTime,
		).
		Delete(&models.BlockedSlot{}).Error
}

// Compile-time check
var _ domain.ScheduleRepository = (*ScheduleGormRepository)(nil)
