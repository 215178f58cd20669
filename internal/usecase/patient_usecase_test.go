package usecase

import (
	"errors"
	"testing"

	"smilehub-server/internal/delivery/dto"
	"smilehub-server/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func validRequest() *dto.PatientRequest {
	return &dto.PatientRequest{
		Name:     "John",
		Mobile:   "9000000000",
		TotalFee: decimal.RequireFromString("1000"),
	}
}

func TestApplyRequestRejectsNegativeFee(t *testing.T) {
	req := validRequest()
	req.TotalFee = decimal.RequireFromString("-1")

	if err := applyRequest(&entity.Patient{}, req); !errors.Is(err, ErrNegativeFee) {
		t.Errorf("err = %v, want ErrNegativeFee", err)
	}
}

func TestApplyRequestRejectsNonPositivePayment(t *testing.T) {
	for _, amount := range []string{"0", "-50"} {
		req := validRequest()
		req.Payments = []dto.PaymentRequest{{Amount: decimal.RequireFromString(amount), Method: entity.PaymentMethodCash}}

		if err := applyRequest(&entity.Patient{}, req); !errors.Is(err, ErrNonPositivePayment) {
			t.Errorf("amount %s: err = %v, want ErrNonPositivePayment", amount, err)
		}
	}
}

func TestApplyRequestRejectsBadStartDate(t *testing.T) {
	req := validRequest()
	req.StartDate = "15-03-2026"

	if err := applyRequest(&entity.Patient{}, req); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("err = %v, want ErrInvalidDateFormat", err)
	}
}

func TestApplyRequestAssignsPaymentIDs(t *testing.T) {
	req := validRequest()
	req.Payments = []dto.PaymentRequest{
		{Amount: decimal.RequireFromString("400"), Method: entity.PaymentMethodCard},
	}

	var patient entity.Patient
	if err := applyRequest(&patient, req); err != nil {
		t.Fatalf("applyRequest: %v", err)
	}
	if len(patient.Payments) != 1 {
		t.Fatalf("payments length = %d, want 1", len(patient.Payments))
	}
	if patient.Payments[0].ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected payment ID to be assigned")
	}
	if patient.Payments[0].Date.IsZero() {
		t.Error("expected payment date to default to now")
	}
}

func TestApplyRequestFullReplace(t *testing.T) {
	patient := entity.Patient{
		Name:     "Old",
		Surname:  "Record",
		TotalFee: decimal.RequireFromString("9999"),
		Payments: entity.PaymentList{{Amount: decimal.RequireFromString("100")}},
		Images:   entity.StringList{"old-image"},
	}

	req := validRequest()
	req.Images = []string{"new-image"}
	if err := applyRequest(&patient, req); err != nil {
		t.Fatalf("applyRequest: %v", err)
	}

	if patient.Name != "John" || patient.Surname != "" {
		t.Errorf("fields not fully replaced: name=%q surname=%q", patient.Name, patient.Surname)
	}
	if len(patient.Payments) != 0 {
		t.Errorf("payments not replaced, got %d entries", len(patient.Payments))
	}
	if len(patient.Images) != 1 || patient.Images[0] != "new-image" {
		t.Errorf("images not replaced, got %v", patient.Images)
	}
}

func TestReplaceImageAt(t *testing.T) {
	images := entity.StringList{"a", "b", "c"}

	out, err := replaceImageAt(images, 1, "B")
	if err != nil {
		t.Fatalf("replaceImageAt: %v", err)
	}
	if out[1] != "B" || out[0] != "a" || out[2] != "c" {
		t.Errorf("unexpected list after replace: %v", out)
	}
	if images[1] != "b" {
		t.Error("input list was mutated")
	}
}

func TestReplaceImageAtOutOfRange(t *testing.T) {
	images := entity.StringList{"a", "b"}

	for _, index := range []int{-1, 2, 100} {
		if _, err := replaceImageAt(images, index, "x"); !errors.Is(err, ErrImageIndexOutOfRange) {
			t.Errorf("index %d: err = %v, want ErrImageIndexOutOfRange", index, err)
		}
	}
	if images[0] != "a" || images[1] != "b" {
		t.Error("failed replace mutated the list")
	}
}

func TestDeleteImageAt(t *testing.T) {
	images := entity.StringList{"a", "b", "c"}

	out, err := deleteImageAt(images, 1)
	if err != nil {
		t.Fatalf("deleteImageAt: %v", err)
	}
	if len(out) != 2 || out[0] != "a" || out[1] != "c" {
		t.Errorf("unexpected list after delete: %v", out)
	}
}

func TestDeleteImageAtLastImage(t *testing.T) {
	if _, err := deleteImageAt(entity.StringList{"only"}, 0); !errors.Is(err, ErrLastImage) {
		t.Errorf("err = %v, want ErrLastImage", err)
	}
}

func TestDeleteImageAtOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 3} {
		if _, err := deleteImageAt(entity.StringList{"a", "b", "c"}, index); !errors.Is(err, ErrImageIndexOutOfRange) {
			t.Errorf("index %d: err = %v, want ErrImageIndexOutOfRange", index, err)
		}
	}
}
