package models

import "time"

type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Codigo string `gorm:"size:36;uniqueIndex" json:"codigo"`

	Data string `gorm:"size:10;not null" json:"data"`
	Hora string `gorm:"size:5;not null" json:"hora"`

	Status string `gorm:"size:20;default:'agendado'" json:"status"`

	ClienteID uint    `json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServicoID uint    `json:"servico_id"`
	Servico   Servico `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	FuncionarioID uint        `json:"funcionario_id"`
	Funcionario   Funcionario `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClienteNome     string  `gorm:"size:100" json:"cliente_nome"`
	PetNome         string  `gorm:"size:100" json:"pet_nome"`
	ServicoNome     string  `gorm:"size:100" json:"servico_nome"`
	FuncionarioNome string  `gorm:"size:100" json:"funcionario_nome"`
	ServicoPreco    float64 `json:"servico_preco"`

	Observacoes string `gorm:"size:255" json:"observacoes"`

	Lembretes []LembreteEmail `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
