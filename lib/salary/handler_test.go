package salary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	approvalstore "hrms-backend/lib/approval/store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type fakeApprovalStore struct {
	approvedInYear int64
}

func (f *fakeApprovalStore) Create(rec dbmodels.ApprovalRequest) (string, error) {
	return "id-1", nil
}

func (f *fakeApprovalStore) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	return nil, nil
}

func (f *fakeApprovalStore) FindPending(kind models.RequestKind, employeeID string) (*dbmodels.ApprovalRequest, error) {
	return nil, nil
}

func (f *fakeApprovalStore) CountApprovedInYear(kind models.RequestKind, employeeID string, year int) (int64, error) {
	return f.approvedInYear, nil
}

func (f *fakeApprovalStore) List(filter approvalstore.ListFilter) ([]dbmodels.ApprovalRequest, int64, error) {
	return nil, 0, nil
}

func (f *fakeApprovalStore) AdvanceStage(id string, from, to models.ApprovalStage) (bool, error) {
	return false, nil
}

func (f *fakeApprovalStore) Finalize(id string, from models.ApprovalStage, approvedBy, remarks string) (bool, error) {
	return false, nil
}

func (f *fakeApprovalStore) RejectPending(id string, rejectedBy, remarks string) (bool, error) {
	return false, nil
}

func (f *fakeApprovalStore) SetDocumentKey(id, key string) error {
	return nil
}

func newValidateRequest() dbmodels.ApprovalRequest {
	return dbmodels.ApprovalRequest{
		Kind:           models.KindSalaryChange,
		EmployeeID:     "EMP001",
		CurrentSalary:  50000,
		ProposedSalary: 55000,
		EffectiveDate:  time.Now().AddDate(0, 1, 0),
	}
}

func TestValidateOk(t *testing.T) {
	handler := &impl{approvalStore: &fakeApprovalStore{}}
	require.NoError(t, handler.Validate(newValidateRequest()))
}

func TestValidateAmounts(t *testing.T) {
	handler := &impl{approvalStore: &fakeApprovalStore{}}

	rec := newValidateRequest()
	rec.CurrentSalary = 0
	err := handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))

	rec = newValidateRequest()
	rec.ProposedSalary = -100
	err = handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestValidateProposedNotGreater(t *testing.T) {
	handler := &impl{approvalStore: &fakeApprovalStore{}}

	rec := newValidateRequest()
	rec.ProposedSalary = rec.CurrentSalary
	err := handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))

	rec.ProposedSalary = rec.CurrentSalary - 1
	err = handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestValidateIncreaseCap(t *testing.T) {
	handler := &impl{approvalStore: &fakeApprovalStore{}}

	rec := newValidateRequest()
	rec.ProposedSalary = rec.CurrentSalary * 1.5
	require.NoError(t, handler.Validate(rec))

	rec.ProposedSalary = rec.CurrentSalary*1.5 + 1
	err := handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestValidateEffectiveDateInPast(t *testing.T) {
	handler := &impl{approvalStore: &fakeApprovalStore{}}

	rec := newValidateRequest()
	rec.EffectiveDate = time.Now().AddDate(0, 0, -2)
	err := handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestValidateYearLimit(t *testing.T) {
	handler := &impl{approvalStore: &fakeApprovalStore{approvedInYear: MaxApprovedPerYear}}

	err := handler.Validate(newValidateRequest())
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))

	handler = &impl{approvalStore: &fakeApprovalStore{approvedInYear: MaxApprovedPerYear - 1}}
	require.NoError(t, handler.Validate(newValidateRequest()))
}
