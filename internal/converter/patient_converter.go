package converter

import (
	"smilehub-server/internal/delivery/dto"
	"smilehub-server/internal/domain/entity"
	"smilehub-server/internal/ledger"
)

// PatientToResponse converts a Patient entity to its response DTO, filling in
// the computed ledger fields so clients never have to re-derive them.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	payments := make([]dto.PaymentResponse, 0, len(patient.Payments))
	for _, p := range patient.Payments {
		payments = append(payments, dto.PaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Date:   p.Date,
			Method: p.Method,
			Notes:  p.Notes,
		})
	}

	startDate := ""
	if patient.StartDate != nil {
		startDate = patient.StartDate.Format("2006-01-02")
	}

	images := []string(patient.Images)
	if images == nil {
		images = []string{}
	}

	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Surname:        patient.Surname,
		Gender:         patient.Gender,
		Mobile:         patient.Mobile,
		Age:            patient.Age,
		ChiefComplaint: patient.ChiefComplaint,
		Diagnosis:      patient.Diagnosis,
		TreatmentPlan:  patient.TreatmentPlan,
		TreatmentType:  patient.TreatmentType,
		StartDate:      startDate,
		TotalFee:       patient.TotalFee,
		TotalPaid:      ledger.TotalPaid(patient.Payments),
		DueAmount:      ledger.Due(patient.TotalFee, patient.Payments),
		Images:         images,
		Payments:       payments,
		CreatedAt:      patient.CreatedAt,
		UpdatedAt:      patient.UpdatedAt,
	}
}
