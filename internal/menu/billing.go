package menu

import (
	"context"
	"fmt"

	"zielarnia/internal/domain"
)

func (m *Menu) manageBillTypes(ctx context.Context) error {
	for {
		m.ui.Header("Bill types")
		m.ui.Println("1. List  2. Add  3. Edit  4. Delete  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			types, err := m.store.BillTypes(ctx)
			if err != nil {
				return err
			}
			for _, bt := range types {
				desc := ""
				if bt.Description != nil {
					desc = *bt.Description
				}
				m.ui.Printf("%4d  %-20s %s\n", bt.ID, bt.TypeName, desc)
			}
		case 2:
			name := m.ui.ReadString("Type name:", false)
			if name == "" {
				return nil
			}
			bt := domain.BillType{TypeName: name}
			if desc := m.ui.ReadString("Description (optional):", true); desc != "" {
				bt.Description = &desc
			}
			if err := m.store.AddBillType(ctx, bt); err != nil {
				return err
			}
			m.ui.Success(fmt.Sprintf("Bill type %q added.", name))
			m.log.Info(fmt.Sprintf("bill type %q added", name))
		case 3:
			id := m.ui.ReadIntAtLeast("Bill type id:", 1)
			bt, err := m.store.BillTypeByID(ctx, id)
			if err != nil {
				return err
			}
			if bt == nil {
				m.ui.Warn("No such bill type.")
				continue
			}
			if v := m.ui.ReadString(fmt.Sprintf("Name [%s]:", bt.TypeName), true); v != "" {
				bt.TypeName = v
			}
			if v := m.ui.ReadString("Description (empty keeps current):", true); v != "" {
				bt.Description = &v
			}
			if err := m.store.UpdateBillType(ctx, *bt); err != nil {
				return err
			}
			m.ui.Success("Bill type updated.")
		case 4:
			id := m.ui.ReadIntAtLeast("Bill type id to delete:", 1)
			if !m.ui.Confirm(fmt.Sprintf("Really delete bill type %d?", id)) {
				continue
			}
			if err := m.store.DeleteBillType(ctx, id); err != nil {
				return err
			}
			m.ui.Success("Bill type deleted.")
			m.log.Warn(fmt.Sprintf("bill type %d deleted", id))
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

func (m *Menu) manageBills(ctx context.Context) error {
	for {
		m.ui.Header("Bills")
		m.ui.Println("1. List  2. Add  3. Edit  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			bills, err := m.store.Bills(ctx)
			if err != nil {
				return err
			}
			for _, b := range bills {
				m.ui.Printf("%4d  %s  type:%-4d %10.2f zł\n",
					b.ID, b.BillDate.Format("2006-01-02"), b.BillTypeID, b.Amount)
			}
		case 2:
			if err := m.addBill(ctx); err != nil {
				return err
			}
		case 3:
			if err := m.editBill(ctx); err != nil {
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

func (m *Menu) addBill(ctx context.Context) error {
	form := billForm{
		BillTypeID: m.ui.ReadIntAtLeast("Bill type id:", 1),
		Amount:     m.ui.ReadFloat("Amount:", 0.01),
	}
	if !m.checkForm(form) {
		return nil
	}
	bt, err := m.store.BillTypeByID(ctx, form.BillTypeID)
	if err != nil {
		return err
	}
	if bt == nil {
		m.ui.Warn("No such bill type, bill not saved.")
		return nil
	}
	bill := domain.Bill{
		BillDate:   m.ui.ReadDate("Bill date (YYYY-MM-DD):"),
		BillTypeID: form.BillTypeID,
		Amount:     form.Amount,
	}
	if err := m.store.AddBill(ctx, bill); err != nil {
		return err
	}
	m.ui.Success("Bill recorded.")
	m.log.Info(fmt.Sprintf("bill of %.2f recorded under type %q", bill.Amount, bt.TypeName))
	return nil
}

func (m *Menu) editBill(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Bill id to edit:", 1)
	bill, err := m.store.BillByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		m.ui.Warn("No such bill.")
		return nil
	}
	if m.ui.Confirm("Change the amount?") {
		bill.Amount = m.ui.ReadFloat("New amount:", 0.01)
	}
	if m.ui.Confirm("Change the date?") {
		bill.BillDate = m.ui.ReadDate("New date (YYYY-MM-DD):")
	}
	if err := m.store.UpdateBill(ctx, *bill); err != nil {
		return err
	}
	m.ui.Success("Bill updated.")
	m.log.Info(fmt.Sprintf("bill %d updated", bill.ID))
	return nil
}
