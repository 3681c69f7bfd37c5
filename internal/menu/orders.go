package menu

import (
	"context"
	"fmt"
	"time"

	"zielarnia/internal/auth"
	"zielarnia/internal/domain"
)

// placeOrder builds an order interactively and saves it atomically. The
// logged-in identity must resolve to a client profile by email.
func (m *Menu) placeOrder(ctx context.Context, user *auth.Identity) error {
	m.ui.Header("New order")
	client, err := m.store.ClientByEmail(ctx, user.Login)
	if err != nil {
		return err
	}
	if client == nil {
		m.ui.Error("No client profile matches your login. Ask the shop to register you first.")
		m.log.Warn(fmt.Sprintf("order attempt by %q without a client profile", user.Login))
		return nil
	}

	products, err := m.store.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		m.ui.Println("No products available to order.")
		return nil
	}
	for _, p := range products {
		m.ui.Printf("%4d  %-30s %8.2f zł\n", p.ID, p.Name, p.Price)
	}

	var items []domain.OrderItem
	for {
		id := m.ui.ReadIntAtLeast("Product id (0 to finish):", 0)
		if id == 0 {
			break
		}
		product := findProduct(products, id)
		if product == nil {
			m.ui.Warn("No such product.")
			continue
		}
		qty := m.ui.ReadIntAtLeast(fmt.Sprintf("Quantity of %q:", product.Name), 1)
		if qty == 0 {
			break
		}
		merged := false
		for i := range items {
			if items[i].ProductID == id {
				items[i].Quantity += qty
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, domain.OrderItem{ProductID: id, Quantity: qty})
		}
		if m.ui.EOF() {
			break
		}
	}
	if len(items) == 0 {
		m.ui.Warn("Order is empty, nothing was saved.")
		return nil
	}
	if !m.ui.Confirm(fmt.Sprintf("Save the order with %d positions?", len(items))) {
		m.ui.Println("Order discarded.")
		return nil
	}

	order := domain.Order{ClientID: &client.ID, OrderDate: time.Now(), Status: domain.StatusNew}
	orderID, err := m.store.PlaceOrder(ctx, order, items)
	if err != nil {
		return err
	}
	m.ui.Success(fmt.Sprintf("Order %d saved.", orderID))
	m.log.Info(fmt.Sprintf("order %d placed by client %d (%s)", orderID, client.ID, client.Email))
	return nil
}

func findProduct(products []domain.Product, id int) *domain.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func (m *Menu) myOrders(ctx context.Context, user *auth.Identity) error {
	client, err := m.store.ClientByEmail(ctx, user.Login)
	if err != nil {
		return err
	}
	if client == nil {
		m.ui.Error("No client profile matches your login.")
		return nil
	}
	orders, err := m.store.OrdersByClient(ctx, client.ID)
	if err != nil {
		return err
	}
	m.ui.Header("My orders")
	if len(orders) == 0 {
		m.ui.Println("You have no orders yet.")
		return nil
	}
	return m.printOrders(ctx, orders)
}

func (m *Menu) listAllOrders(ctx context.Context) error {
	orders, err := m.store.Orders(ctx)
	if err != nil {
		return err
	}
	m.ui.Header("All orders")
	return m.printOrders(ctx, orders)
}

func (m *Menu) printOrders(ctx context.Context, orders []domain.Order) error {
	for _, o := range orders {
		client := "-"
		if o.ClientID != nil {
			client = fmt.Sprintf("%d", *o.ClientID)
		}
		m.ui.Printf("%4d  %s  client:%-4s %s\n",
			o.ID, o.OrderDate.Format("2006-01-02"), client, o.Status)
		items, err := m.store.OrderItems(ctx, o.ID)
		if err != nil {
			return err
		}
		for _, it := range items {
			m.ui.Printf("      product %d x%d\n", it.ProductID, it.Quantity)
		}
	}
	return nil
}

// manageOrders shows the open orders (new and in progress) and lets the
// operator move one to a different status.
func (m *Menu) manageOrders(ctx context.Context) error {
	orders, err := m.store.OrdersByStatus(ctx, domain.StatusNew, domain.StatusInProgress)
	if err != nil {
		return err
	}
	m.ui.Header("Open orders")
	if len(orders) == 0 {
		m.ui.Println("No open orders.")
		return nil
	}
	if err := m.printOrders(ctx, orders); err != nil {
		return err
	}

	orderID := m.ui.ReadIntAtLeast("Order id to update (0 to go back):", 0)
	if orderID == 0 {
		return nil
	}
	m.ui.Println("New status:")
	statuses := domain.AllStatuses()
	for i, st := range statuses {
		m.ui.Printf("%d. %s\n", i+1, st)
	}
	pick := m.ui.ReadIntAtLeast("Choose:", 1)
	if pick < 1 || pick > len(statuses) {
		m.ui.Warn("Unknown status.")
		return nil
	}
	status := statuses[pick-1]
	if err := m.store.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	m.ui.Success(fmt.Sprintf("Order %d is now %s.", orderID, status))
	m.log.Info(fmt.Sprintf("order %d moved to status %s", orderID, status))
	return nil
}
