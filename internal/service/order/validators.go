package order

import (
	"strings"

	"github.com/google/uuid"

	"courier-rating/internal/entities"
)

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func isPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}

func isValidRating(rating int) bool {
	return rating >= entities.RatingMin && rating <= entities.RatingMax
}

func isAllowedTransition(from, to entities.OrderStatusType) bool {
	if from.IsTerminal() {
		return false
	}

	switch to {
	case entities.OrderCancelled:
		return true
	case entities.OrderInProgress:
		return from == entities.OrderAssigned
	case entities.OrderCompleted:
		return from == entities.OrderInProgress
	default:
		// pending и assigned выставляются созданием и назначением,
		// а не ручной сменой статуса
		return false
	}
}
