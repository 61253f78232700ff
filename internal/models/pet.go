package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint    `json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Nome       string     `gorm:"size:100;not null" json:"nome"`
	Especie    string     `gorm:"size:50" json:"especie"`
	Raca       string     `gorm:"size:50" json:"raca"`
	Nascimento *time.Time `gorm:"type:date" json:"nascimento"`
	Peso       float64    `json:"peso"`
	Sexo       string     `gorm:"size:1" json:"sexo"`

	// Copiado do cliente no momento da escrita, apenas para exibição.
	ClienteNome string `gorm:"size:100" json:"cliente_nome"`

	FotoURL string `gorm:"size:255" json:"foto_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
