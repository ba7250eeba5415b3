package mirror

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"courier-rating/internal/entities"
	"courier-rating/internal/service/order"
)

// Orders — зеркало коллекции заказов: карта в памяти плюс JSON-снимок
// на диске, перезаписываемый целиком на каждое изменение.
type Orders struct {
	path string

	mu   sync.RWMutex
	byID map[string]entities.Order
}

func NewOrders(dir string) (*Orders, error) {
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	s := &Orders{
		path: snapshotPath(dir, ordersFile),
		byID: make(map[string]entities.Order),
	}

	var list []OrderJSON
	if err := readSnapshot(s.path, &list); err != nil {
		return nil, fmt.Errorf("load orders mirror: %w", err)
	}
	for _, o := range list {
		s.byID[o.ID] = orderFromJSON(o)
	}

	return s, nil
}

func (s *Orders) Upsert(orderEntity entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[orderEntity.ID] = orderEntity
	return s.persist()
}

func (s *Orders) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return order.ErrOrderNotFound
	}
	delete(s.byID, id)
	return s.persist()
}

func (s *Orders) ReplaceAll(list []entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]entities.Order, len(list))
	for _, o := range list {
		s.byID[o.ID] = o
	}
	return s.persist()
}

func (s *Orders) GetByID(id string) (*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orderEntity, exists := s.byID[id]
	if !exists {
		return nil, order.ErrOrderNotFound
	}
	return &orderEntity, nil
}

func (s *Orders) GetAll() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(entities.Order) bool { return true })
}

func (s *Orders) GetByCourierID(courierID string) []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(o entities.Order) bool {
		return o.CourierID != nil && *o.CourierID == courierID
	})
}

func (s *Orders) GetByActiveCode(code string) (*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.byID {
		if o.Code != nil && strings.EqualFold(*o.Code, code) && o.Status.HasCourierActivity() {
			found := o
			return &found, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (s *Orders) ExistsByActiveCode(code string) bool {
	_, err := s.GetByActiveCode(code)
	return err == nil
}

func (s *Orders) HasActiveByCourierID(courierID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.byID {
		if o.CourierID != nil && *o.CourierID == courierID && o.Status.HasCourierActivity() {
			return true
		}
	}
	return false
}

// collect вызывается под блокировкой. Свежие заказы первыми.
func (s *Orders) collect(match func(entities.Order) bool) []entities.Order {
	result := make([]entities.Order, 0, len(s.byID))
	for _, o := range s.byID {
		if match(o) {
			result = append(result, o)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

// persist вызывается под блокировкой.
func (s *Orders) persist() error {
	list := make([]OrderJSON, 0, len(s.byID))
	for _, o := range s.byID {
		list = append(list, orderToJSON(o))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	if err := writeSnapshot(s.path, list); err != nil {
		return fmt.Errorf("persist orders mirror: %w", err)
	}
	return nil
}
