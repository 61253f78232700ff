package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	funcionarioID *uint,
	acao string,
	entidade string,
	entidadeID *uint,
	metadata any,
) error {

	// Sem banco, a auditoria é descartada.
	if l.db == nil {
		return nil
	}

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		FuncionarioID: funcionarioID,
		Acao:          acao,
		Entidade:      entidade,
		EntidadeID:    entidadeID,
		Metadata:      metaJSON,
	}

	return l.db.Create(&entry).Error
}
