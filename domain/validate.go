package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func (m *Medicine) Validate() error {
	switch {
	case blank(m.Name):
		return invalid("medicine name is required")
	case blank(m.Category):
		return invalid("category is required")
	case m.Quantity < 0:
		return invalid("quantity must be non-negative")
	case m.UnitPrice < 0:
		return invalid("unit price must be non-negative")
	case m.ExpiryDate.IsZero():
		return invalid("expiry date is required")
	}
	return nil
}

func (e *Equipment) Validate() error {
	switch {
	case blank(e.Name):
		return invalid("equipment name is required")
	case blank(e.Category):
		return invalid("category is required")
	case e.PurchasePrice != nil && *e.PurchasePrice < 0:
		return invalid("purchase price must be non-negative")
	case e.Status != "" && !e.Status.Valid():
		return invalid("invalid equipment status %q", e.Status)
	}
	return nil
}

func (r *MaintenanceRecord) Validate() error {
	switch {
	case r.EquipmentID <= 0:
		return invalid("equipment is required")
	case r.MaintenanceDate.IsZero():
		return invalid("maintenance date is required")
	case !r.Type.Valid():
		return invalid("invalid maintenance type %q", r.Type)
	case r.Status != "" && !r.Status.Valid():
		return invalid("invalid maintenance status %q", r.Status)
	case r.Cost != nil && *r.Cost < 0:
		return invalid("cost must be non-negative")
	}
	return nil
}

func (s *Supplier) Validate() error {
	if blank(s.Name) {
		return invalid("supplier name is required")
	}
	if !blank(s.Email) {
		if _, err := mail.ParseAddress(s.Email); err != nil {
			return invalid("email should be valid")
		}
	}
	return nil
}

func (o *PurchaseOrder) Validate() error {
	switch {
	case o.SupplierID <= 0:
		return invalid("supplier is required")
	case !o.ItemType.Valid():
		return invalid("invalid item type %q", o.ItemType)
	case o.Quantity != nil && *o.Quantity < 1:
		return invalid("quantity must be at least 1")
	case o.UnitPrice != nil && *o.UnitPrice < 0:
		return invalid("unit price must be non-negative")
	case o.OrderDate.IsZero():
		return invalid("order date is required")
	case o.Status != "" && !o.Status.Valid():
		return invalid("invalid order status %q", o.Status)
	}
	return nil
}

func (a *Account) Validate() error {
	switch {
	case blank(a.Username):
		return invalid("username is required")
	case !a.Role.Valid():
		return invalid("invalid role %q", a.Role)
	}
	if a.Email != nil && !blank(*a.Email) {
		if _, err := mail.ParseAddress(*a.Email); err != nil {
			return invalid("email should be valid")
		}
	}
	return nil
}
