package ratingcode

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

const (
	codeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeDigits  = "0123456789"

	// Пространство кодов — 260 комбинаций. После неудачного случайного
	// подбора свободный код добирается перебором.
	maxRandomAttempts = 100

	DefaultTTL = 7 * 24 * time.Hour
)

// Registry хранит выданные коды оценки и сроки их действия.
type Registry struct {
	orders OrderFinder
	clock  Clock
	ttl    time.Duration

	mu    sync.Mutex
	codes map[string]time.Time // код -> момент истечения
}

func New(orders OrderFinder, clock Clock, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		orders: orders,
		clock:  clock,
		ttl:    ttl,
		codes:  make(map[string]time.Time),
	}
}

// Issue генерирует новый двухсимвольный код (буква + цифра) и регистрирует
// срок его действия. Коды, срок которых истёк, считаются свободными.
func (r *Registry) Issue() (string, error) {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < maxRandomAttempts; attempt++ {
		code := randomCode()
		if expiry, exists := r.codes[code]; exists && expiry.After(now) {
			continue
		}
		r.codes[code] = now.Add(r.ttl)
		return code, nil
	}

	for _, letter := range codeLetters {
		for _, digit := range codeDigits {
			code := string([]byte{byte(letter), byte(digit)})
			if expiry, exists := r.codes[code]; exists && expiry.After(now) {
				continue
			}
			r.codes[code] = now.Add(r.ttl)
			return code, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

// IsValid сообщает, действует ли код. При отсутствии записи в реестре код
// сверяется с активными заказами, и на совпадении срок восстанавливается.
func (r *Registry) IsValid(ctx context.Context, code string) (bool, error) {
	normalized, ok := Normalize(code)
	if !ok {
		return false, nil
	}

	now := r.clock.Now()

	r.mu.Lock()
	expiry, exists := r.codes[normalized]
	r.mu.Unlock()

	if exists {
		return expiry.After(now), nil
	}

	live, err := r.orders.ExistsByActiveCode(ctx, normalized)
	if err != nil {
		return false, fmt.Errorf("check order by code: %w", err)
	}
	if !live {
		return false, nil
	}

	r.mu.Lock()
	r.codes[normalized] = now.Add(r.ttl)
	r.mu.Unlock()

	return true, nil
}

// Invalidate удаляет код из реестра. Повторный вызов безвреден.
func (r *Registry) Invalidate(code string) {
	normalized, ok := Normalize(code)
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.codes, normalized)
	r.mu.Unlock()
}

// PurgeExpired удаляет записи с истёкшим сроком и возвращает их количество.
func (r *Registry) PurgeExpired() int {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for code, expiry := range r.codes {
		if !expiry.After(now) {
			delete(r.codes, code)
			removed++
		}
	}
	return removed
}

// Normalize приводит код к каноническому виду: без пробелов, в верхнем
// регистре. Возвращает false, если код не похож на букву и цифру.
func Normalize(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 2 {
		return "", false
	}
	if normalized[0] < 'A' || normalized[0] > 'Z' {
		return "", false
	}
	if normalized[1] < '0' || normalized[1] > '9' {
		return "", false
	}
	return normalized, true
}

func randomCode() string {
	letter := codeLetters[rand.IntN(len(codeLetters))]
	digit := codeDigits[rand.IntN(len(codeDigits))]
	return string([]byte{letter, digit})
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewSystemClock() Clock {
	return systemClock{}
}
