package models

import "time"

type ItemAtendimento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AtendimentoID uint `gorm:"index" json:"atendimento_id"`

	Tipo string `gorm:"size:10;not null" json:"tipo"`

	// Referência ao produto ou serviço conforme o tipo.
	ItemID uint `json:"item_id"`

	Quantidade int `json:"quantidade"`

	// Preço congelado no momento da inclusão.
	ValorUnitario float64 `json:"valor_unitario"`

	Nome string `gorm:"size:100" json:"nome"`

	CreatedAt time.Time `json:"created_at"`
}
