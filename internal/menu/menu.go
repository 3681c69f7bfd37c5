// Package menu is the console dispatch loop: numbered, role-gated menus
// routing to the store operations. It is the single place where errors from
// below become user-visible messages; nothing here terminates the process.
package menu

import (
	"context"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"

	"zielarnia/internal/auth"
	"zielarnia/internal/console"
	"zielarnia/internal/logging"
	"zielarnia/internal/store"
)

// Menu drives one logged-in session.
type Menu struct {
	store    *store.Store
	log      *logging.Logger
	ui       *console.Console
	validate *validatorv10.Validate
}

func New(st *store.Store, log *logging.Logger, ui *console.Console) *Menu {
	return &Menu{store: st, log: log, ui: ui, validate: validatorv10.New()}
}

// Run loops until the user picks logout (0) or input runs out. Every menu
// action failure is reported, logged and recovered; the loop keeps going.
func (m *Menu) Run(ctx context.Context, user *auth.Identity) {
	for {
		m.showOptions(user)
		choice := m.ui.ReadInt("Choose an option:")
		m.log.Info(fmt.Sprintf("user %q chose menu option %d (role %s)", user.Login, choice, user.Role))
		if choice == 0 {
			break
		}
		if err := m.dispatch(ctx, choice, user); err != nil {
			m.ui.Error(fmt.Sprintf("The operation failed: %v", err))
			m.log.Error(fmt.Sprintf("menu action %d failed for user %q", choice, user.Login), err)
		}
	}
	m.log.Info(fmt.Sprintf("user %q logged out", user.Login))
}

func (m *Menu) showOptions(user *auth.Identity) {
	m.ui.Header(fmt.Sprintf("Main menu (%s)", user.Role))
	m.ui.Println(" 1. List products")
	m.ui.Println(" 2. Place a new order")
	m.ui.Println(" 3. Show my orders")
	if user.Role == auth.RoleHerbalist || user.Role == auth.RoleAdmin {
		m.ui.Println("--- Shop management ---")
		m.ui.Println("10. Manage products")
		m.ui.Println("11. Manage categories")
		m.ui.Println("12. Manage clients")
		m.ui.Println("13. Manage orders")
		m.ui.Println("14. Manage suppliers")
		m.ui.Println("15. Manage delivery links")
		m.ui.Println("16. List all orders")
	}
	if user.Role == auth.RoleAdmin {
		m.ui.Println("--- Administration ---")
		m.ui.Println("20. Manage bill types")
		m.ui.Println("21. Manage bills")
	}
	m.ui.Println("--------------------")
	m.ui.Println(" 0. Log out and exit")
}

// allowed gates choices by role; Herbalist inherits the client options and
// Admin inherits everything.
func allowed(role auth.Role, choice int) bool {
	switch {
	case choice >= 1 && choice <= 3:
		return true
	case choice >= 10 && choice <= 16:
		return role == auth.RoleHerbalist || role == auth.RoleAdmin
	case choice == 20 || choice == 21:
		return role == auth.RoleAdmin
	default:
		return false
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int, user *auth.Identity) error {
	if !allowed(user.Role, choice) {
		m.ui.Warn("Unknown option.")
		return nil
	}
	switch choice {
	case 1:
		return m.listProducts(ctx)
	case 2:
		return m.placeOrder(ctx, user)
	case 3:
		return m.myOrders(ctx, user)
	case 10:
		return m.manageProducts(ctx)
	case 11:
		return m.manageCategories(ctx)
	case 12:
		return m.manageClients(ctx)
	case 13:
		return m.manageOrders(ctx)
	case 14:
		return m.manageSuppliers(ctx)
	case 15:
		return m.manageDeliveryLinks(ctx)
	case 16:
		return m.listAllOrders(ctx)
	case 20:
		return m.manageBillTypes(ctx)
	case 21:
		return m.manageBills(ctx)
	}
	m.ui.Warn("Unknown option.")
	return nil
}
