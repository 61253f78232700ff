package models

import "time"

type Funcionario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Cargo    string `gorm:"size:50" json:"cargo"`
	Email    string `gorm:"size:100" json:"email"`
	Telefone string `gorm:"size:20" json:"telefone"`

	EmailLogin string `gorm:"size:100;uniqueIndex;not null" json:"email_login"`
	SenhaHash  string `gorm:"size:255;not null" json:"-"`
	Perfil     string `gorm:"size:20;default:'atendente'" json:"perfil"`
	Ativo      bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
