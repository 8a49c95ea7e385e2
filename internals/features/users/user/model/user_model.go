package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Nama      string    `gorm:"column:nama;size:120;not null" json:"nama"`
	Email     string    `gorm:"column:email;size:255;not null" json:"email"`
	NIM       *string   `gorm:"column:nim;size:32" json:"nim,omitempty"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	Role      string    `gorm:"column:role;size:20;not null;default:praktikan" json:"role"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// email selalu disimpan lowercase
func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Nama = strings.TrimSpace(u.Nama)
	if u.NIM != nil {
		n := strings.TrimSpace(*u.NIM)
		if n == "" {
			u.NIM = nil
		} else {
			u.NIM = &n
		}
	}
	return nil
}
