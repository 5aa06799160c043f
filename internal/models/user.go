package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	DOB          time.Time `gorm:"type:date;not null" json:"dob"`
	Role         string    `gorm:"type:varchar(80);not null" json:"role"`
	ManagerID    *uint64   `gorm:"index" json:"manager_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Manager       *User          `gorm:"foreignKey:ManagerID" json:"-"`
	Subordinates  []User         `gorm:"foreignKey:ManagerID" json:"-"`
	DailyReports  []DailyReport  `gorm:"foreignKey:UserID" json:"-"`
	HourlyReports []HourlyReport `gorm:"foreignKey:UserID" json:"-"`
}
