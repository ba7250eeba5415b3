package user

import (
	"courier-rating/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Role:      entities.RoleType(u.Role),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func FromDomain(userEntity *entities.User) *UserDB {
	if userEntity == nil {
		return nil
	}

	return &UserDB{
		ID:        userEntity.ID,
		Username:  userEntity.Username,
		Password:  userEntity.Password,
		Role:      userEntity.Role.String(),
		Name:      userEntity.Name,
		CreatedAt: userEntity.CreatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{
		ID:       userModify.ID,
		Username: userModify.Username,
		Password: userModify.Password,
		Name:     userModify.Name,
	}

	if userModify.Role != nil {
		roleType := userModify.Role.String()
		userDB.Role = &roleType
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
