package usecase

import "errors"

// maxInstallmentsHardCap is the gateway-imposed ceiling. The store-level
// maximum is configurable but never beats this value: a store owner may
// mis-set it above twelve, in which case the hard cap binds first.
const maxInstallmentsHardCap = 12

var (
	ErrInstallmentsTooLow        = errors.New("installments number should be greater than zero")
	ErrInstallmentsAboveHardCap  = errors.New("installments number should be at most twelve")
	ErrInstallmentsAboveStoreMax = errors.New("installments number exceeds the store maximum")
)

// validateInstallments checks a shopper-requested installment count
// against the hard cap and the store-configured maximum. Pure; no calls
// leave this function.
func validateInstallments(requested, storeMax int) error {
	if requested <= 0 {
		return ErrInstallmentsTooLow
	}
	if requested > maxInstallmentsHardCap {
		return ErrInstallmentsAboveHardCap
	}
	if requested > storeMax {
		return ErrInstallmentsAboveStoreMax
	}
	return nil
}
