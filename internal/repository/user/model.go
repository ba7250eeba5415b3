package user

import "time"

type UserDB struct {
	ID        string
	Username  string
	Password  string
	Role      string
	Name      string
	CreatedAt time.Time
}

type UserModifyDB struct {
	ID       *string
	Username *string
	Password *string
	Role     *string
	Name     *string
}
