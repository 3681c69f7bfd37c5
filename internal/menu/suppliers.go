package menu

import (
	"context"
	"fmt"

	"zielarnia/internal/domain"
)

func (m *Menu) manageSuppliers(ctx context.Context) error {
	for {
		m.ui.Header("Supplier management")
		m.ui.Println("1. List  2. Add  3. Edit  4. Delete  5. Show address  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			suppliers, err := m.store.Suppliers(ctx)
			if err != nil {
				return err
			}
			for _, sp := range suppliers {
				contact := "-"
				if sp.ContactInfo != nil {
					contact = *sp.ContactInfo
				}
				m.ui.Printf("%4d  %-30s %s\n", sp.ID, sp.Name, contact)
			}
		case 2:
			if err := m.addSupplier(ctx); err != nil {
				return err
			}
		case 3:
			if err := m.editSupplier(ctx); err != nil {
				return err
			}
		case 4:
			id := m.ui.ReadIntAtLeast("Supplier id to delete:", 1)
			if !m.ui.Confirm(fmt.Sprintf("Really delete supplier %d?", id)) {
				continue
			}
			if err := m.store.DeleteSupplier(ctx, id); err != nil {
				return err
			}
			m.ui.Success("Supplier deleted.")
			m.log.Warn(fmt.Sprintf("supplier %d deleted", id))
		case 5:
			if err := m.showSupplierAddress(ctx); err != nil {
				return err
			}
		case 0:
			return nil
		default:
			m.ui.Warn("Unknown option.")
		}
		if m.ui.EOF() {
			return nil
		}
	}
}

func (m *Menu) addSupplier(ctx context.Context) error {
	form := supplierForm{Name: m.ui.ReadString("Supplier name:", false)}
	if !m.checkForm(form) {
		return nil
	}
	sp := domain.Supplier{Name: form.Name}
	if contact := m.ui.ReadString("Contact info (optional):", true); contact != "" {
		sp.ContactInfo = &contact
	}
	if err := m.store.AddSupplier(ctx, sp); err != nil {
		return err
	}
	m.ui.Success(fmt.Sprintf("Supplier %q added.", sp.Name))
	m.log.Info(fmt.Sprintf("supplier %q added", sp.Name))
	return nil
}

func (m *Menu) editSupplier(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Supplier id to edit:", 1)
	sp, err := m.store.SupplierByID(ctx, id)
	if err != nil {
		return err
	}
	if sp == nil {
		m.ui.Warn("No such supplier.")
		return nil
	}
	if v := m.ui.ReadString(fmt.Sprintf("Name [%s]:", sp.Name), true); v != "" {
		sp.Name = v
	}
	if v := m.ui.ReadString("Contact info (empty keeps current):", true); v != "" {
		sp.ContactInfo = &v
	}
	if err := m.store.UpdateSupplier(ctx, *sp); err != nil {
		return err
	}
	m.ui.Success("Supplier updated.")
	m.log.Info(fmt.Sprintf("supplier %d updated", sp.ID))
	return nil
}

func (m *Menu) showSupplierAddress(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Supplier id:", 1)
	sp, err := m.store.SupplierByID(ctx, id)
	if err != nil {
		return err
	}
	if sp == nil {
		m.ui.Warn("No such supplier.")
		return nil
	}
	if sp.AddressID == nil {
		m.ui.Warn("Supplier has no address on file.")
		return nil
	}
	addr, err := m.store.AddressByID(ctx, *sp.AddressID)
	if err != nil {
		return err
	}
	if addr == nil {
		m.ui.Warn("Supplier has no address on file.")
		return nil
	}
	m.printAddress(addr)
	return nil
}

// manageDeliveryLinks maintains the supplier-to-product assignments.
func (m *Menu) manageDeliveryLinks(ctx context.Context) error {
	for {
		m.ui.Header("Delivery links")
		m.ui.Println("1. List  2. Link supplier to product  3. Remove link  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			links, err := m.store.DeliveryLinks(ctx)
			if err != nil {
				return err
			}
			for _, l := range links {
				m.ui.Printf("%-30s -> %s\n", l.SupplierName, l.ProductName)
			}
		case 2:
			supplierID := m.ui.ReadIntAtLeast("Supplier id:", 1)
			productID := m.ui.ReadIntAtLeast("Product id:", 1)
			if err := m.store.AddDeliveryLink(ctx, supplierID, productID); err != nil {
				return err
			}
			m.ui.Success("Link saved.")
			m.log.Info(fmt.Sprintf("delivery link added: supplier %d, product %d", supplierID, productID))
		case 3:
			supplierID := m.ui.ReadIntAtLeast("Supplier id:", 1)
			productID := m.ui.ReadIntAtLeast("Product id:", 1)
			if err := m.store.RemoveDeliveryLink(ctx, supplierID, productID); err != nil {
				return err
			}
			m.ui.Success("Link removed.")
			m.log.Info(fmt.Sprintf("delivery link removed: supplier %d, product %d", supplierID, productID))
		case 0:
			return nil
		default:
			m.ui.Warn("Unknown option.")
		}
		if m.ui.EOF() {
			return nil
		}
	}
}
