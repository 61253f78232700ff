package models

import "time"

type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Email    string `gorm:"size:100" json:"email"`
	Telefone string `gorm:"size:20" json:"telefone"`
	Endereco string `gorm:"size:255" json:"endereco"`
	CPF      string `gorm:"size:14" json:"cpf"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
