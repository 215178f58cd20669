package usecase

import (
	"context"
	"errors"
	"time"

	"smilehub-server/internal/converter"
	"smilehub-server/internal/delivery/dto"
	"smilehub-server/internal/domain/entity"
	"smilehub-server/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNegativeFee          = errors.New("total fee must not be negative")
	ErrNonPositivePayment   = errors.New("payment amount must be greater than zero")
	ErrImageIndexOutOfRange = errors.New("image index out of range")
	ErrLastImage            = errors.New("cannot delete the last remaining image")
)

// PatientUsecase is the tenant-scoped record store. Every operation takes the
// tenant ID extracted from the caller's token; a patient belonging to another
// tenant is reported as not found, never as forbidden.
type PatientUsecase interface {
	Create(ctx context.Context, tenantID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]dto.PatientResponse, error)
	Get(ctx context.Context, tenantID, patientID uuid.UUID) (*dto.PatientResponse, error)
	Update(ctx context.Context, tenantID, patientID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, tenantID, patientID uuid.UUID) error
	ReplaceImage(ctx context.Context, tenantID, patientID uuid.UUID, index int, imageData string) ([]string, error)
	DeleteImage(ctx context.Context, tenantID, patientID uuid.UUID, index int) ([]string, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, tenantID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{TenantID: tenantID}
	if err := applyRequest(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, tenantID uuid.UUID) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAllByTenant(ctx, u.db, tenantID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *converter.PatientToResponse(&patients[i]))
	}
	return responses, nil
}

func (u *patientUsecase) Get(ctx context.Context, tenantID, patientID uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, tenantID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, tenantID, patientID uuid.UUID, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, tenantID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Full replace of the mutable fields, payments and images included.
	if err := applyRequest(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, tenantID, patientID uuid.UUID) error {
	affected, err := u.patientRepo.Delete(ctx, u.db, tenantID, patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (u *patientUsecase) ReplaceImage(ctx context.Context, tenantID, patientID uuid.UUID, index int, imageData string) ([]string, error) {
	return u.mutateImages(ctx, tenantID, patientID, func(images entity.StringList) (entity.StringList, error) {
		return replaceImageAt(images, index, imageData)
	})
}

func (u *patientUsecase) DeleteImage(ctx context.Context, tenantID, patientID uuid.UUID, index int) ([]string, error) {
	return u.mutateImages(ctx, tenantID, patientID, func(images entity.StringList) (entity.StringList, error) {
		return deleteImageAt(images, index)
	})
}

func replaceImageAt(images entity.StringList, index int, imageData string) (entity.StringList, error) {
	if index < 0 || index >= len(images) {
		return nil, ErrImageIndexOutOfRange
	}
	out := make(entity.StringList, len(images))
	copy(out, images)
	out[index] = imageData
	return out, nil
}

func deleteImageAt(images entity.StringList, index int) (entity.StringList, error) {
	if index < 0 || index >= len(images) {
		return nil, ErrImageIndexOutOfRange
	}
	if len(images) == 1 {
		return nil, ErrLastImage
	}
	out := make(entity.StringList, 0, len(images)-1)
	out = append(out, images[:index]...)
	out = append(out, images[index+1:]...)
	return out, nil
}

// mutateImages runs a read-modify-write on the image list inside one
// transaction so the list seen by mutate is the list that gets written.
func (u *patientUsecase) mutateImages(ctx context.Context, tenantID, patientID uuid.UUID, mutate func(entity.StringList) (entity.StringList, error)) ([]string, error) {
	var images entity.StringList

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(ctx, tx, tenantID, patientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		images, err = mutate(patient.Images)
		if err != nil {
			return err
		}

		if err := u.patientRepo.UpdateImages(ctx, tx, tenantID, patientID, images); err != nil {
			u.log.Warnf("Failed to update patient images: %+v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return []string(images), nil
}

// applyRequest copies the request onto the entity, enforcing the money and
// date rules before anything reaches storage.
func applyRequest(patient *entity.Patient, req *dto.PatientRequest) error {
	if req.TotalFee.IsNegative() {
		return ErrNegativeFee
	}

	var startDate *time.Time
	if req.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return ErrInvalidDateFormat
		}
		startDate = &parsed
	}

	payments := make(entity.PaymentList, 0, len(req.Payments))
	for _, p := range req.Payments {
		if !p.Amount.IsPositive() {
			return ErrNonPositivePayment
		}
		id := p.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		date := p.Date
		if date.IsZero() {
			date = time.Now()
		}
		payments = append(payments, entity.Payment{
			ID:     id,
			Amount: p.Amount,
			Date:   date,
			Method: p.Method,
			Notes:  p.Notes,
		})
	}

	patient.Name = req.Name
	patient.Surname = req.Surname
	patient.Gender = req.Gender
	patient.Mobile = req.Mobile
	patient.Age = req.Age
	patient.ChiefComplaint = req.ChiefComplaint
	patient.Diagnosis = req.Diagnosis
	patient.TreatmentPlan = req.TreatmentPlan
	patient.TreatmentType = req.TreatmentType
	patient.StartDate = startDate
	patient.TotalFee = req.TotalFee
	patient.Images = entity.StringList(req.Images)
	patient.Payments = payments
	return nil
}
