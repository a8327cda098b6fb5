package model

import "time"

type Book struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null;index"`
	AuthorId  uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *Author `gorm:"foreignKey:AuthorId;constraint:OnDelete:RESTRICT"`
}

func (Book) TableName() string {
	return "books"
}
