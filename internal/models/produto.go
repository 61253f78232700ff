package models

import "time"

type Produto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome      string  `gorm:"size:100;not null" json:"nome"`
	Descricao string  `gorm:"size:255" json:"descricao"`
	Preco     float64 `json:"preco"`
	Estoque   int     `json:"estoque"`
	Categoria string  `gorm:"size:50" json:"categoria"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
