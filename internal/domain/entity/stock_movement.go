package entity

import "time"

// Tipos de movimiento de stock. IN y OUT aplican un delta con signo sobre el
// stock actual; ADJUSTMENT fija un valor absoluto y no tiene delta ni inversa.
const (
	MovementTypeIN         = "IN"
	MovementTypeOUT        = "OUT"
	MovementTypeADJUSTMENT = "ADJUSTMENT"
)

// Razones de negocio de un movimiento. Opacas para el algoritmo del ledger;
// solo se validan como pertenencia al catálogo.
const (
	MovementReasonPurchase   = "PURCHASE"
	MovementReasonSale       = "SALE"
	MovementReasonReturn     = "RETURN"
	MovementReasonDamage     = "DAMAGE"
	MovementReasonCorrection = "CORRECTION"
)

// StockMovement es el registro de auditoría de un cambio de cantidad.
// Quantity es magnitud (>= 0); el signo lo determina Type.
type StockMovement struct {
	ID        string
	ProductID string
	Quantity  int64
	Type      string // IN, OUT, ADJUSTMENT
	Reason    string // PURCHASE, SALE, RETURN, DAMAGE, CORRECTION
	CreatedBy string // UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidMovementType indica si el tipo pertenece al catálogo.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// ValidMovementReason indica si la razón pertenece al catálogo.
func ValidMovementReason(r string) bool {
	switch r {
	case MovementReasonPurchase, MovementReasonSale, MovementReasonReturn,
		MovementReasonDamage, MovementReasonCorrection:
		return true
	}
	return false
}
