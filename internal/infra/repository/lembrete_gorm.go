package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/PetCareServices/petcare-api/internal/domain/lembrete"
	"github.com/PetCareServices/petcare-api/internal/models"
)

type LembreteGormRepository struct {
	db *gorm.DB
}

func NewLembreteGormRepository(db *gorm.DB) *LembreteGormRepository {
	return &LembreteGormRepository{db: db}
}

func (r *LembreteGormRepository) ListPendentes(
	ctx context.Context,
) ([]models.LembreteEmail, error) {

	var lembretes []models.LembreteEmail
	if err := r.db.WithContext(ctx).
		Preload("Agendamento").
		Preload("Agendamento.Cliente").
		Where("status = ? AND enviado_em IS NULL", domain.StatusPendente).
		Order("id ASC").
		Find(&lembretes).Error; err != nil {
		return nil, err
	}
	return lembretes, nil
}

func (r *LembreteGormRepository) MarcarEnviado(
	ctx context.Context,
	id uint,
	quando time.Time,
) error {

	return r.db.WithContext(ctx).
		Model(&models.LembreteEmail{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     domain.StatusEnviado,
			"enviado_em": quando,
		}).Error
}

func (r *LembreteGormRepository) MarcarErro(
	ctx context.Context,
	id uint,
	motivo string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.LembreteEmail{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": domain.StatusErro,
			"erro":   motivo,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*LembreteGormRepository)(nil)
