package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Movie struct {
	gorm.Model
	Title       string         `gorm:"not null" json:"title"`
	ReleaseDate datatypes.Date `gorm:"not null" json:"releaseDate"`
	Genre       string         `gorm:"not null" json:"genre"`
	Rating      float64        `gorm:"not null;check:rating >= 0 AND rating <= 10" json:"rating"` // 0–10 rating
	Overview    string         `gorm:"type:text;default:''" json:"overview"`
	Poster      string         `gorm:"default:''" json:"poster"` // stored file reference, served under /uploads
	UserID      uint           `gorm:"not null" json:"userId"`   // Owner, set at creation, never reassigned
	CategoryID  uint           `gorm:"not null" json:"categoryId"`
	User        User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Category    Category       `json:"category"`
}
