package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FuncionarioID *uint  `json:"funcionario_id"`
	Acao          string `gorm:"size:50;not null" json:"acao"`

	Entidade   string `gorm:"size:50" json:"entidade"`
	EntidadeID *uint  `json:"entidade_id"`
	Metadata   string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
