package usecase

import (
	"errors"
	"testing"
)

func TestValidateInstallments(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		storeMax  int
		want      error
	}{
		{name: "zero", requested: 0, storeMax: 10, want: ErrInstallmentsTooLow},
		{name: "negative", requested: -3, storeMax: 10, want: ErrInstallmentsTooLow},
		{name: "above hard cap", requested: 13, storeMax: 10, want: ErrInstallmentsAboveHardCap},
		{name: "above store max", requested: 11, storeMax: 10, want: ErrInstallmentsAboveStoreMax},
		{name: "at store max", requested: 10, storeMax: 10, want: nil},
		{name: "one", requested: 1, storeMax: 10, want: nil},
		{name: "hard cap binds over misconfigured store max", requested: 13, storeMax: 15, want: ErrInstallmentsAboveHardCap},
		{name: "twelve with generous store max", requested: 12, storeMax: 15, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateInstallments(tc.requested, tc.storeMax)
			if !errors.Is(err, tc.want) {
				t.Fatalf("validateInstallments(%d, %d) = %v, want %v", tc.requested, tc.storeMax, err, tc.want)
			}
		})
	}
}

func TestValidateInstallments_Bounds(t *testing.T) {
	// Succeeds iff 1 <= n <= min(hard cap, store max).
	const storeMax = 10
	for n := -5; n <= 20; n++ {
		err := validateInstallments(n, storeMax)
		wantOK := n >= 1 && n <= storeMax
		if wantOK && err != nil {
			t.Fatalf("expected %d installments to be valid, got %v", n, err)
		}
		if !wantOK && err == nil {
			t.Fatalf("expected %d installments to be invalid", n)
		}
	}
}
