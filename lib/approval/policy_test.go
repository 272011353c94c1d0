package approval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
)

func TestDefaultPolicyChain(t *testing.T) {
	policy := DefaultPolicy()

	require.Equal(t, models.StageManager, policy.FirstStage())

	next, hasNext := policy.NextStage(models.StageManager)
	require.True(t, hasNext)
	require.Equal(t, models.StageHR, next)

	next, hasNext = policy.NextStage(models.StageHR)
	require.True(t, hasNext)
	require.Equal(t, models.StageAdmin, next)

	_, hasNext = policy.NextStage(models.StageAdmin)
	require.False(t, hasNext)
	require.True(t, policy.IsLast(models.StageAdmin))
	require.False(t, policy.IsLast(models.StageHR))
}

func TestDefaultPolicyAuthorization(t *testing.T) {
	policy := DefaultPolicy()

	// администратор может согласовать любой этап
	for _, stage := range []models.ApprovalStage{models.StageManager, models.StageHR, models.StageAdmin} {
		require.True(t, policy.IsAuthorized(stage, models.AdminRole), string(stage))
	}

	require.True(t, policy.IsAuthorized(models.StageManager, models.ManagerRole))
	require.False(t, policy.IsAuthorized(models.StageManager, models.HRRole))

	require.True(t, policy.IsAuthorized(models.StageHR, models.HRRole))
	require.False(t, policy.IsAuthorized(models.StageHR, models.ManagerRole))

	require.False(t, policy.IsAuthorized(models.StageAdmin, models.ManagerRole))
	require.False(t, policy.IsAuthorized(models.StageAdmin, models.HRRole))

	// рядовой сотрудник не согласует ничего
	for _, stage := range []models.ApprovalStage{models.StageManager, models.StageHR, models.StageAdmin} {
		require.False(t, policy.IsAuthorized(stage, models.EmployeeRole), string(stage))
	}
}
