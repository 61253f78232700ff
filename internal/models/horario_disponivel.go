package models

import "time"

type HorarioDisponivel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Data string `gorm:"size:10;uniqueIndex:idx_horario_func;not null" json:"data"`
	Hora string `gorm:"size:5;uniqueIndex:idx_horario_func;not null" json:"hora"`

	FuncionarioID uint        `gorm:"uniqueIndex:idx_horario_func" json:"funcionario_id"`
	Funcionario   Funcionario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FuncionarioNome string `gorm:"size:100" json:"funcionario_nome"`

	Disponivel bool `gorm:"default:true" json:"disponivel"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
