//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ratingcode_test
package ratingcode

import (
	"context"
	"time"
)

// OrderFinder проверяет, закреплён ли код за активным заказом. Используется
// как резервный источник, когда запись о коде потеряна (например, после
// рестарта).
type OrderFinder interface {
	ExistsByActiveCode(ctx context.Context, code string) (bool, error)
}

type Clock interface {
	Now() time.Time
}
