package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPaymentListScanPreservesOrder(t *testing.T) {
	original := PaymentList{
		{ID: uuid.New(), Amount: decimal.RequireFromString("100.50"), Date: time.Now().UTC(), Method: PaymentMethodCash},
		{ID: uuid.New(), Amount: decimal.RequireFromString("400"), Date: time.Now().UTC(), Method: PaymentMethodUPI, Notes: "second installment"},
		{ID: uuid.New(), Amount: decimal.RequireFromString("0.01"), Date: time.Now().UTC(), Method: PaymentMethodCard},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned PaymentList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(scanned) != len(original) {
		t.Fatalf("length = %d, want %d", len(scanned), len(original))
	}
	for i := range original {
		if scanned[i].ID != original[i].ID {
			t.Errorf("position %d: ID changed, order not preserved", i)
		}
		if !scanned[i].Amount.Equal(original[i].Amount) {
			t.Errorf("position %d: amount = %s, want %s", i, scanned[i].Amount, original[i].Amount)
		}
	}
}

func TestStringListScanNilBecomesEmpty(t *testing.T) {
	var list StringList
	if err := list.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if list == nil {
		t.Error("nil column should scan to an empty list, not nil")
	}
}
