package converter

import (
	"testing"
	"time"

	"smilehub-server/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPatientToResponseLedgerFields(t *testing.T) {
	patient := &entity.Patient{
		ID:       uuid.New(),
		Name:     "John",
		TotalFee: decimal.RequireFromString("1000"),
		Payments: entity.PaymentList{
			{ID: uuid.New(), Amount: decimal.RequireFromString("400"), Date: time.Now(), Method: entity.PaymentMethodCash},
			{ID: uuid.New(), Amount: decimal.RequireFromString("250"), Date: time.Now(), Method: entity.PaymentMethodUPI},
		},
		Images: entity.StringList{"img-a", "img-b"},
	}

	resp := PatientToResponse(patient)

	if !resp.TotalPaid.Equal(decimal.RequireFromString("650")) {
		t.Errorf("total_paid = %s, want 650", resp.TotalPaid)
	}
	if !resp.DueAmount.Equal(decimal.RequireFromString("350")) {
		t.Errorf("due_amount = %s, want 350", resp.DueAmount)
	}
	if len(resp.Payments) != 2 {
		t.Errorf("payments length = %d, want 2", len(resp.Payments))
	}
	if len(resp.Images) != 2 {
		t.Errorf("images length = %d, want 2", len(resp.Images))
	}
}

func TestPatientToResponseOverpaidClamps(t *testing.T) {
	patient := &entity.Patient{
		Name:     "Jane",
		TotalFee: decimal.RequireFromString("500"),
		Payments: entity.PaymentList{
			{Amount: decimal.RequireFromString("800")},
		},
	}

	resp := PatientToResponse(patient)
	if !resp.DueAmount.IsZero() {
		t.Errorf("due_amount = %s, want 0", resp.DueAmount)
	}
}

func TestPatientToResponseEmptyLists(t *testing.T) {
	resp := PatientToResponse(&entity.Patient{Name: "Empty"})

	if resp.Images == nil {
		t.Error("images should serialize as [], not null")
	}
	if resp.Payments == nil {
		t.Error("payments should serialize as [], not null")
	}
	if !resp.TotalPaid.IsZero() || !resp.DueAmount.IsZero() {
		t.Errorf("expected zero ledger fields, got paid=%s due=%s", resp.TotalPaid, resp.DueAmount)
	}
}

func TestPatientToResponseNil(t *testing.T) {
	if PatientToResponse(nil) != nil {
		t.Error("nil patient should convert to nil response")
	}
}

func TestPatientToResponseStartDate(t *testing.T) {
	d := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	resp := PatientToResponse(&entity.Patient{Name: "Dated", StartDate: &d})
	if resp.StartDate != "2026-03-15" {
		t.Errorf("start_date = %q, want 2026-03-15", resp.StartDate)
	}
}
