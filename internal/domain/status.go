package domain

import "fmt"

// OrderStatus is the closed set of order states. The orders table constrains
// its status column to exactly four string values; the mapping below is total
// in both directions and fails loudly on anything else.
type OrderStatus int

const (
	StatusNew OrderStatus = iota
	StatusInProgress
	StatusFulfilled
	StatusCancelled
)

// Column values as the existing schema defines them.
const (
	dbStatusNew        = "Nowe"
	dbStatusInProgress = "W trakcie"
	dbStatusFulfilled  = "Zrealizowane"
	dbStatusCancelled  = "Anulowane"
)

// String returns the display name shown on the console.
func (s OrderStatus) String() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In progress"
	case StatusFulfilled:
		return "Fulfilled"
	case StatusCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("OrderStatus(%d)", int(s))
	}
}

// DBString converts the status to the column value stored in the database.
func (s OrderStatus) DBString() (string, error) {
	switch s {
	case StatusNew:
		return dbStatusNew, nil
	case StatusInProgress:
		return dbStatusInProgress, nil
	case StatusFulfilled:
		return dbStatusFulfilled, nil
	case StatusCancelled:
		return dbStatusCancelled, nil
	default:
		return "", fmt.Errorf("unexpected order status value: %d", int(s))
	}
}

// StatusFromDB converts a stored column value back into an OrderStatus.
func StatusFromDB(value string) (OrderStatus, error) {
	switch value {
	case dbStatusNew:
		return StatusNew, nil
	case dbStatusInProgress:
		return StatusInProgress, nil
	case dbStatusFulfilled:
		return StatusFulfilled, nil
	case dbStatusCancelled:
		return StatusCancelled, nil
	default:
		return 0, fmt.Errorf("invalid order status in database: %q", value)
	}
}

// AllStatuses lists every status in menu order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{StatusNew, StatusInProgress, StatusFulfilled, StatusCancelled}
}
