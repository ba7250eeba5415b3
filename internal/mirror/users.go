package mirror

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"courier-rating/internal/entities"
	"courier-rating/internal/service/user"
)

// Users — зеркало коллекции пользователей, устроено так же, как Orders.
type Users struct {
	path string

	mu   sync.RWMutex
	byID map[string]entities.User
}

func NewUsers(dir string) (*Users, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	s := &Users{
		path: snapshotPath(dir, usersFile),
		byID: make(map[string]entities.User),
	}

	var list []UserJSON
	if err := readSnapshot(s.path, &list); err != nil {
		return nil, fmt.Errorf("load users mirror: %w", err)
	}
	for _, u := range list {
		s.byID[u.ID] = userFromJSON(u)
	}

	return s, nil
}

func (s *Users) Upsert(userEntity entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[userEntity.ID] = userEntity
	return s.persist()
}

func (s *Users) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return user.ErrUserNotFound
	}
	delete(s.byID, id)
	return s.persist()
}

func (s *Users) ReplaceAll(list []entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]entities.User, len(list))
	for _, u := range list {
		s.byID[u.ID] = u
	}
	return s.persist()
}

func (s *Users) GetByID(id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userEntity, exists := s.byID[id]
	if !exists {
		return nil, user.ErrUserNotFound
	}
	return &userEntity, nil
}

func (s *Users) GetByUsername(username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.byID {
		if strings.EqualFold(u.Username, username) {
			found := u
			return &found, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *Users) GetByRole(role entities.RoleType) []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.User, 0, len(s.byID))
	for _, u := range s.byID {
		if u.Role == role {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *Users) GetAll() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.User, 0, len(s.byID))
	for _, u := range s.byID {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// persist вызывается под блокировкой.
func (s *Users) persist() error {
	list := make([]UserJSON, 0, len(s.byID))
	for _, u := range s.byID {
		list = append(list, userToJSON(u))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})

	if err := writeSnapshot(s.path, list); err != nil {
		return fmt.Errorf("persist users mirror: %w", err)
	}
	return nil
}
