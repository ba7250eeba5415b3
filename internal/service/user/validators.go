package user

import (
	"strings"

	"github.com/google/uuid"
)

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func isValidUsername(username string) bool {
	username = strings.TrimSpace(username)
	if username == "" {
		return false
	}
	return !strings.ContainsAny(username, " \t")
}

func isValidPassword(password string) bool {
	return password != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
