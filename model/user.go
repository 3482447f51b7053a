package model

type User struct {
	DTO
	OutletID  uint    `json:"outletId"`
	Outlet    Outlet  `gorm:"foreignKey:OutletID" json:"outlet"`
	Name      string  `gorm:"not null" json:"name"`
	Email     string  `gorm:"uniqueIndex;not null" json:"email"`
	Password  string  `gorm:"not null" json:"-"` // legacy plaintext or scrypt$<salt>$<hash>
	Role      string  `gorm:"not null;default:cashier" json:"role"`
	AvatarUrl *string `json:"avatarUrl,omitempty"`
}

type Users []User
