package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	MovieID uint   `gorm:"not null;uniqueIndex:idx_review_movie_user" json:"movieId"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_review_movie_user" json:"userId"` // Who gave the review
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"` // 1–10 rating
	Comment string `gorm:"type:text;default:''" json:"comment"`
	Movie   Movie  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User    User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
