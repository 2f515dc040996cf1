package domain

import "time"

// Customer is the engine's view of a CRM-owned customer record.
// Referenced by ID only; the CRM remains the system of record.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string // mobile, the primary contact number
	HomePhone string
	WorkPhone string
	Email     string
	Addresses []Address
	CreatedAt *time.Time // nil when the CRM omits it
}

// Phones returns every phone field on the record, in priority order.
func (c *Customer) Phones() []string {
	return []string{c.Phone, c.HomePhone, c.WorkPhone}
}

// Address is a CRM-owned service address.
type Address struct {
	ID      string
	Street  string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
}
