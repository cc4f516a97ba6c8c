package domain

import "github.com/ghuser/ordersvc/pkg/domainerr"

// Fixed-message errors for the customer domain. Use errors.Is() to check these,
// or match the kind with errors.Is(err, domainerr.ErrBusinessRule).
var (
	// ErrNoCustomersFound is returned by listings when the table is empty.
	ErrNoCustomersFound = domainerr.BusinessRule("Nenhum cliente encontrado.")

	// ErrNilCustomer is returned when a save is attempted without a customer.
	ErrNilCustomer = domainerr.BusinessRule("O cliente não pode ser nulo.")

	// ErrEmailTaken indicates another customer already uses the address.
	ErrEmailTaken = domainerr.BusinessRule("Já existe um cliente cadastrado com este e-mail.")
)

// MsgCustomerInUse is the DatabaseError message for a delete blocked by orders.
const MsgCustomerInUse = "Erro ao excluir cliente. Ele pode estar associado a pedidos."
