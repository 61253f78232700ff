package models

import "time"

type LembreteEmail struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgendamentoID uint        `gorm:"index" json:"agendamento_id"`
	Agendamento   Agendamento `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"agendamento"`

	Tipo   string `gorm:"size:15;not null" json:"tipo"`
	Status string `gorm:"size:10;default:'pendente'" json:"status"`

	EnviadoEm *time.Time `json:"enviado_em"`
	Erro      string     `gorm:"size:255" json:"erro"`

	CreatedAt time.Time `json:"created_at"`
}
