package entities

import "time"

type User struct {
	ID        string
	Username  string
	Password  string
	Role      RoleType
	Name      string
	CreatedAt time.Time
}

type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleCourier RoleType = "courier"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) IsValid() bool {
	return r == RoleAdmin || r == RoleCourier
}

type UserModify struct {
	ID       *string
	Username *string
	Password *string
	Role     *RoleType
	Name     *string
}
