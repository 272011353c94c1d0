package promotion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func TestValidateSameRole(t *testing.T) {
	handler := &impl{}
	rec := dbmodels.ApprovalRequest{
		Kind:          models.KindPromotion,
		EmployeeID:    "EMP001",
		OldRole:       "Engineer",
		NewRole:       "Engineer",
		EffectiveDate: time.Now().AddDate(0, 1, 0),
	}
	err := handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestValidateOk(t *testing.T) {
	handler := &impl{}
	rec := dbmodels.ApprovalRequest{
		Kind:          models.KindPromotion,
		EmployeeID:    "EMP001",
		OldRole:       "Engineer",
		NewRole:       "Senior Engineer",
		EffectiveDate: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, handler.Validate(rec))
}

func TestValidateEffectiveDateInPast(t *testing.T) {
	handler := &impl{}
	rec := dbmodels.ApprovalRequest{
		Kind:          models.KindPromotion,
		EmployeeID:    "EMP001",
		OldRole:       "Engineer",
		NewRole:       "Senior Engineer",
		EffectiveDate: time.Now().AddDate(0, 0, -2),
	}
	err := handler.Validate(rec)
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}
