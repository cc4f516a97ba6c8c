package domain

import "github.com/ghuser/ordersvc/pkg/domainerr"

// Fixed-message errors for the order domain. Use errors.Is() to check these,
// or match the kind with errors.Is(err, domainerr.ErrBusinessRule).
var (
	ErrNilOrder                = domainerr.BusinessRule("Pedido não pode ser nulo.")
	ErrNoCustomer              = domainerr.BusinessRule("Pedido deve estar associado a um cliente.")
	ErrInvalidCustomerID       = domainerr.BusinessRule("Cliente associado ao pedido não possui um ID válido.")
	ErrNoItems                 = domainerr.BusinessRule("Pedido deve conter pelo menos um item.")
	ErrNonPositiveTotal        = domainerr.BusinessRule("O total do pedido deve ser maior que zero.")
	ErrNegativeDiscountedTotal = domainerr.BusinessRule("O total com desconto não pode ser negativo.")
	ErrPastDeliveryDate        = domainerr.BusinessRule("A data de entrega não pode ser uma data no passado.")

	ErrInvalidQuantity = domainerr.BusinessRule("Item do pedido possui uma quantidade inválida.")
	ErrInvalidPrice    = domainerr.BusinessRule("Item do pedido possui um preço inválido.")

	// Listing errors.
	ErrNoOrdersFound = domainerr.BusinessRule("Nenhum pedido encontrado.")
	ErrNoItemsFound  = domainerr.BusinessRule("Nenhum item encontrado.")
)

// MsgOrderInUse is the DatabaseError message for a delete blocked by references.
const MsgOrderInUse = "Erro ao excluir pedido. Ele pode estar associado a outros registros."
