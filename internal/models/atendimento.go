package models

import "time"

type Atendimento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Data   time.Time `json:"data"`
	Status string    `gorm:"size:20;default:'agendado'" json:"status"`

	ClienteID uint    `json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	FuncionarioID uint        `json:"funcionario_id"`
	Funcionario   Funcionario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClienteNome     string `gorm:"size:100" json:"cliente_nome"`
	PetNome         string `gorm:"size:100" json:"pet_nome"`
	FuncionarioNome string `gorm:"size:100" json:"funcionario_nome"`

	Observacoes string `gorm:"size:255" json:"observacoes"`

	Itens []ItemAtendimento `gorm:"constraint:OnDelete:CASCADE;" json:"itens"`

	// Sempre recalculado a partir do conjunto completo de itens.
	ValorTotal float64 `json:"valor_total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
