package menu

import (
	"context"
	"fmt"

	"zielarnia/internal/domain"
)

func (m *Menu) manageClients(ctx context.Context) error {
	for {
		m.ui.Header("Client management")
		m.ui.Println("1. List  2. Add  3. Edit  4. Delete  5. Show address  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			if err := m.listClients(ctx); err != nil {
				return err
			}
		case 2:
			if err := m.addClient(ctx); err != nil {
				return err
			}
		case 3:
			if err := m.editClient(ctx); err != nil {
				return err
			}
		case 5:
			if err := m.showClientAddress(ctx); err != nil {
				return err
			}
		case 4:
			id := m.ui.ReadIntAtLeast("Client id to delete:", 1)
			if !m.ui.Confirm(fmt.Sprintf("Really delete client %d?", id)) {
				continue
			}
			if err := m.store.DeleteClient(ctx, id); err != nil {
				return err
			}
			m.ui.Success("Client deleted.")
			m.log.Warn(fmt.Sprintf("client %d deleted", id))
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

func (m *Menu) listClients(ctx context.Context) error {
	clients, err := m.store.Clients(ctx)
	if err != nil {
		return err
	}
	for _, c := range clients {
		locker := "-"
		if c.ParcelLockerID != nil {
			locker = *c.ParcelLockerID
		}
		m.ui.Printf("%4d  %-15s %-20s %-30s %-12s locker:%s\n",
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone, locker)
	}
	return nil
}

// addClient collects the profile plus a postal address; the address row is
// created first so the client row can reference its generated id.
func (m *Menu) addClient(ctx context.Context) error {
	form := clientForm{
		FirstName: m.ui.ReadString("First name:", false),
		LastName:  m.ui.ReadString("Last name:", false),
		Email:     m.ui.ReadString("Email:", false),
		Phone:     m.ui.ReadString("Phone:", false),
	}
	if !m.checkForm(form) {
		return nil
	}

	m.ui.Println("Postal address:")
	addr := domain.Address{
		Country:        m.ui.ReadString("Country:", false),
		City:           m.ui.ReadString("City:", false),
		Street:         m.ui.ReadString("Street:", false),
		BuildingNumber: m.ui.ReadString("Building number:", false),
	}
	if apt := m.ui.ReadString("Apartment number (optional):", true); apt != "" {
		addr.ApartmentNumber = &apt
	}
	addressID, err := m.store.AddAddress(ctx, addr)
	if err != nil {
		return err
	}

	client := domain.Client{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		AddressID: addressID,
	}
	if locker := m.ui.ReadString("Parcel locker id (optional):", true); locker != "" {
		client.ParcelLockerID = &locker
	}
	if err := m.store.AddClient(ctx, client); err != nil {
		return err
	}
	m.ui.Success(fmt.Sprintf("Client %s %s added.", client.FirstName, client.LastName))
	m.log.Info(fmt.Sprintf("client %q added", client.Email))
	return nil
}

func (m *Menu) editClient(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Client id to edit:", 1)
	client, err := m.store.ClientByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		m.ui.Warn("No such client.")
		return nil
	}
	if v := m.ui.ReadString(fmt.Sprintf("First name [%s]:", client.FirstName), true); v != "" {
		client.FirstName = v
	}
	if v := m.ui.ReadString(fmt.Sprintf("Last name [%s]:", client.LastName), true); v != "" {
		client.LastName = v
	}
	if v := m.ui.ReadString(fmt.Sprintf("Email [%s]:", client.Email), true); v != "" {
		client.Email = v
	}
	if v := m.ui.ReadString(fmt.Sprintf("Phone [%s]:", client.Phone), true); v != "" {
		client.Phone = v
	}
	form := clientForm{
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
		Phone:     client.Phone,
	}
	if !m.checkForm(form) {
		return nil
	}
	if err := m.store.UpdateClient(ctx, *client); err != nil {
		return err
	}
	m.ui.Success("Client updated.")
	m.log.Info(fmt.Sprintf("client %d updated", client.ID))
	if m.ui.Confirm("Edit the postal address too?") {
		return m.editAddress(ctx, client.AddressID)
	}
	return nil
}

func (m *Menu) showClientAddress(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Client id:", 1)
	client, err := m.store.ClientByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		m.ui.Warn("No such client.")
		return nil
	}
	addr, err := m.store.AddressByID(ctx, client.AddressID)
	if err != nil {
		return err
	}
	if addr == nil {
		m.ui.Warn("Client has no address on file.")
		return nil
	}
	m.printAddress(addr)
	return nil
}

func (m *Menu) printAddress(a *domain.Address) {
	building := a.BuildingNumber
	if a.ApartmentNumber != nil {
		building += "/" + *a.ApartmentNumber
	}
	m.ui.Printf("%s %s, %s, %s\n", a.Street, building, a.City, a.Country)
}

// editAddress updates an existing address row in place; empty answers keep
// the current values.
func (m *Menu) editAddress(ctx context.Context, addressID int) error {
	addr, err := m.store.AddressByID(ctx, addressID)
	if err != nil {
		return err
	}
	if addr == nil {
		m.ui.Warn("No address on file.")
		return nil
	}
	if v := m.ui.ReadString(fmt.Sprintf("Country [%s]:", addr.Country), true); v != "" {
		addr.Country = v
	}
	if v := m.ui.ReadString(fmt.Sprintf("City [%s]:", addr.City), true); v != "" {
		addr.City = v
	}
	if v := m.ui.ReadString(fmt.Sprintf("Street [%s]:", addr.Street), true); v != "" {
		addr.Street = v
	}
	if v := m.ui.ReadString(fmt.Sprintf("Building number [%s]:", addr.BuildingNumber), true); v != "" {
		addr.BuildingNumber = v
	}
	if v := m.ui.ReadString("Apartment number (empty keeps current):", true); v != "" {
		addr.ApartmentNumber = &v
	}
	if err := m.store.UpdateAddress(ctx, *addr); err != nil {
		return err
	}
	m.ui.Success("Address updated.")
	m.log.Info(fmt.Sprintf("address %d updated", addr.ID))
	return nil
}
