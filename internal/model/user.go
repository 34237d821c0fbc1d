package model

type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleAdmin     UserRole = "ADMIN"
	RoleModerator UserRole = "MODERATOR"
)

// swagger:model User
type User struct {
	UUIDBase
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Phone    string   `gorm:"size:20" json:"phone,omitempty"`
	Avatar   string   `gorm:"size:255" json:"avatar,omitempty"`
	Role     UserRole `gorm:"size:20;default:'USER'" json:"role"`
	IsActive bool     `gorm:"default:true" json:"isActive"`
}

func (User) TableName() string {
	return "users"
}
