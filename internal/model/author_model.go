package model

import "time"

type Author struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(255);not null"`
	LastName  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Books []*Book `gorm:"foreignKey:AuthorId"`
}

func (Author) TableName() string {
	return "authors"
}
