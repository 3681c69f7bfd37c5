package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"zielarnia/internal/domain"
)

// ErrCreateOrder is the only error order placement shows to callers. The
// distinction between a failed header insert and a failed line-item insert
// is preserved in the log, not in the returned error.
var ErrCreateOrder = errors.New("order creation failed")

const (
	selectOrdersSQL         = "SELECT id, klient_id, data_zamowienia, status FROM Zamowienia ORDER BY data_zamowienia DESC"
	selectOrdersByClientSQL = "SELECT id, klient_id, data_zamowienia, status FROM Zamowienia WHERE klient_id = ? ORDER BY data_zamowienia DESC"
	selectOrderItemsSQL     = "SELECT zamowienie_id, produkt_id, ilosc FROM SzczegolyZamowienia WHERE zamowienie_id = ?"
	insertOrderSQL          = "INSERT INTO Zamowienia (klient_id, data_zamowienia, status) VALUES (?, ?, ?)"
	insertOrderItemSQL      = "INSERT INTO SzczegolyZamowienia (zamowienie_id, produkt_id, ilosc) VALUES (?, ?, ?)"
	updateOrderStatusSQL    = "UPDATE Zamowienia SET status = ? WHERE id = ?"
)

func scanOrder(rows *sql.Rows) (domain.Order, error) {
	var (
		o        domain.Order
		clientID sql.NullInt64
		status   string
	)
	if err := rows.Scan(&o.ID, &clientID, &o.OrderDate, &status); err != nil {
		return domain.Order{}, err
	}
	o.ClientID = intPtr(clientID)
	st, err := domain.StatusFromDB(status)
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = st
	return o, nil
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	return queryList(ctx, s, selectOrdersSQL, scanOrder)
}

// OrdersByStatus lists orders whose status is any of the given ones.
func (s *Store) OrdersByStatus(ctx context.Context, statuses ...domain.OrderStatus) ([]domain.Order, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	placeholders := make([]string, 0, len(statuses))
	args := make([]any, 0, len(statuses))
	for _, st := range statuses {
		value, err := st.DBString()
		if err != nil {
			return nil, err
		}
		placeholders = append(placeholders, "?")
		args = append(args, value)
	}
	query := fmt.Sprintf(
		"SELECT id, klient_id, data_zamowienia, status FROM Zamowienia WHERE status IN (%s) ORDER BY data_zamowienia DESC",
		strings.Join(placeholders, ","))
	return queryList(ctx, s, query, scanOrder, args...)
}

func (s *Store) OrdersByClient(ctx context.Context, clientID int) ([]domain.Order, error) {
	return queryList(ctx, s, selectOrdersByClientSQL, scanOrder, clientID)
}

func scanOrderItem(rows *sql.Rows) (domain.OrderItem, error) {
	var it domain.OrderItem
	if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Quantity); err != nil {
		return domain.OrderItem{}, err
	}
	return it, nil
}

// OrderItems lists the line items belonging to an order.
func (s *Store) OrderItems(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	return queryList(ctx, s, selectOrderItemsSQL, scanOrderItem, orderID)
}

// CreateOrder inserts a bare order header (no line items) and returns the
// generated id. Order placement with items goes through PlaceOrder.
func (s *Store) CreateOrder(ctx context.Context, o domain.Order) (int, error) {
	status, err := o.Status.DBString()
	if err != nil {
		return 0, err
	}
	return s.insertID(ctx, insertOrderSQL, nullInt(o.ClientID), o.OrderDate, status)
}

// AddOrderItem inserts a single line item for an existing order.
func (s *Store) AddOrderItem(ctx context.Context, it domain.OrderItem) error {
	return s.exec(ctx, insertOrderItemSQL, it.OrderID, it.ProductID, it.Quantity)
}

// UpdateOrderStatus changes the status of an existing order; status is the
// only mutable order field after creation.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	value, err := status.DBString()
	if err != nil {
		return err
	}
	return s.exec(ctx, updateOrderStatusSQL, value, orderID)
}

// PlaceOrder creates the order header and its line items as one atomic
// unit: either all rows become visible — with the generated order id
// backfilled into every line item — or none do.
//
// Items with Quantity <= 0 are skipped, not rejected. Any store-level
// failure surfaces as ErrCreateOrder after rollback; the detailed cause
// goes to the log only.
func (s *Store) PlaceOrder(ctx context.Context, order domain.Order, items []domain.OrderItem) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log.Error("begin order transaction", err)
		return 0, ErrCreateOrder
	}

	orderID, err := placeOrderTx(ctx, tx, order, items)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			// Reported, not auto-healed: the database may hold a partial order.
			s.log.Error("CRITICAL: cannot roll back order transaction, data may be inconsistent", rbErr)
		}
		s.log.Error("create order", err)
		return 0, ErrCreateOrder
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("commit order transaction", err)
		return 0, ErrCreateOrder
	}
	return orderID, nil
}

// placeOrderTx runs the fixed insert sequence: header first (line items
// need the generated id), then every positive-quantity item.
func placeOrderTx(ctx context.Context, tx *sql.Tx, order domain.Order, items []domain.OrderItem) (int, error) {
	status, err := order.Status.DBString()
	if err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, insertOrderSQL, nullInt(order.ClientID), order.OrderDate, status)
	if err != nil {
		return 0, fmt.Errorf("insert order header: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read generated order id: %w", err)
	}
	orderID := int(id)

	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, insertOrderItemSQL, orderID, it.ProductID, it.Quantity); err != nil {
			return 0, fmt.Errorf("insert line item (product %d): %w", it.ProductID, err)
		}
	}
	return orderID, nil
}
