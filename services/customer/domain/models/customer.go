package models

// Customer places orders. VIP customers receive a discount on every order.
type Customer struct {
	ID    int64 // 0 until persisted
	Name  string
	Email string
	VIP   bool
}

// NewCustomer constructs an unsaved Customer.
func NewCustomer(name, email string, vip bool) *Customer {
	return &Customer{Name: name, Email: email, VIP: vip}
}

// HasID reports whether the customer has been assigned a persistent identity.
func (c *Customer) HasID() bool {
	return c != nil && c.ID > 0
}

// Update copies the mutable fields of other onto c. The identity is kept.
func (c *Customer) Update(other *Customer) {
	c.Name = other.Name
	c.Email = other.Email
	c.VIP = other.VIP
}
