package leave

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hrms-backend/lib/overlap"
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"
)

type memLeaveStore struct {
	seq  int
	recs map[string]*dbmodels.Leave
}

func newMemLeaveStore() *memLeaveStore {
	return &memLeaveStore{recs: map[string]*dbmodels.Leave{}}
}

func (m *memLeaveStore) Create(rec dbmodels.Leave) (string, error) {
	m.seq++
	rec.ID = fmt.Sprintf("leave-%v", m.seq)
	m.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (m *memLeaveStore) GetByID(id string) (*dbmodels.Leave, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (m *memLeaveStore) ListByEmployee(employeeID string) ([]dbmodels.Leave, error) {
	list := []dbmodels.Leave{}
	for _, rec := range m.recs {
		if rec.EmployeeID == employeeID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (m *memLeaveStore) ListByStatus(status models.LeaveStatus, employeeID string) ([]dbmodels.Leave, error) {
	list := []dbmodels.Leave{}
	for _, rec := range m.recs {
		if rec.Status != status {
			continue
		}
		if employeeID != "" && rec.EmployeeID != employeeID {
			continue
		}
		list = append(list, *rec)
	}
	return list, nil
}

func (m *memLeaveStore) FindOverlapping(employeeID string, startDate, endDate time.Time) ([]dbmodels.Leave, error) {
	list := []dbmodels.Leave{}
	for _, rec := range m.recs {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Status != models.LeaveStatusPending && rec.Status != models.LeaveStatusApproved {
			continue
		}
		if overlap.DatesOverlap(rec.StartDate, rec.EndDate, startDate, endDate) {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (m *memLeaveStore) SetApproved(id, approvedBy string) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.Status != models.LeaveStatusPending {
		return false, nil
	}
	now := time.Now()
	rec.Status = models.LeaveStatusApproved
	rec.ApprovedBy = &approvedBy
	rec.ApprovedOn = &now
	return true, nil
}

func (m *memLeaveStore) SetRejected(id, rejectedBy, reason string) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.Status != models.LeaveStatusPending {
		return false, nil
	}
	now := time.Now()
	rec.Status = models.LeaveStatusRejected
	rec.RejectedBy = &rejectedBy
	rec.RejectedOn = &now
	rec.RejectionReason = reason
	return true, nil
}

func (m *memLeaveStore) SetCancelled(id string) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.Status != models.LeaveStatusApproved {
		return false, nil
	}
	now := time.Now()
	rec.Status = models.LeaveStatusCancelled
	rec.CancelledOn = &now
	return true, nil
}

type memBalanceStore struct {
	recs map[string]*dbmodels.LeaveBalance
}

func newMemBalanceStore() *memBalanceStore {
	return &memBalanceStore{recs: map[string]*dbmodels.LeaveBalance{}}
}

func (m *memBalanceStore) GetByEmployee(employeeID string) (*dbmodels.LeaveBalance, error) {
	rec, ok := m.recs[employeeID]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (m *memBalanceStore) Create(rec dbmodels.LeaveBalance) (string, error) {
	rec.ID = "balance-" + rec.EmployeeID
	m.recs[rec.EmployeeID] = &rec
	return rec.ID, nil
}

func (m *memBalanceStore) Debit(employeeID string, days int) (bool, error) {
	rec, ok := m.recs[employeeID]
	if !ok || rec.RemainingLeaves < days {
		return false, nil
	}
	rec.UsedLeaves += days
	rec.RemainingLeaves -= days
	return true, nil
}

func (m *memBalanceStore) Refund(employeeID string, days int) (bool, error) {
	rec, ok := m.recs[employeeID]
	if !ok || rec.UsedLeaves < days {
		return false, nil
	}
	rec.UsedLeaves -= days
	rec.RemainingLeaves += days
	return true, nil
}

func newLeaveHandler() (*impl, *memLeaveStore, *memBalanceStore) {
	store := newMemLeaveStore()
	balanceStore := newMemBalanceStore()
	handler := &impl{
		store:        store,
		balanceStore: balanceStore,
	}
	return handler, store, balanceStore
}

func applyData(start, end string) leaveapimodels.ApplyData {
	return leaveapimodels.ApplyData{
		LeaveType: "Annual",
		StartDate: start,
		EndDate:   end,
		Reason:    "отпуск",
	}
}

func TestCreateBalanceDuplicate(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.CreateBalance("EMP001", 25)
	require.NoError(t, err)
	require.Equal(t, 25, view.TotalLeaves)
	require.Equal(t, 25, view.RemainingLeaves)

	_, err = handler.CreateBalance("EMP001", 25)
	require.Error(t, err)
	require.True(t, models.IsConflictError(err))
}

func TestApplyCreatesPending(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusPending, view.Status)
	require.Equal(t, 3, view.Days)

	// баланс создается с годовой нормой, подача его не трогает
	balance, err := handler.Balance("EMP001")
	require.NoError(t, err)
	require.Equal(t, 20, balance.TotalLeaves)
	require.Equal(t, 0, balance.UsedLeaves)
	require.Equal(t, 20, balance.RemainingLeaves)
}

func TestApplyOverlapInclusiveBoundary(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	_, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)

	// общий день 12 сентября считается пересечением
	_, err = handler.Apply("EMP001", applyData("2026-09-12", "2026-09-14"))
	require.Error(t, err)
	require.True(t, models.IsConflictError(err))

	// у другого сотрудника пересечения нет
	_, err = handler.Apply("EMP002", applyData("2026-09-12", "2026-09-14"))
	require.NoError(t, err)
}

func TestApplyInsufficientBalance(t *testing.T) {
	handler, _, balanceStore := newLeaveHandler()
	balanceStore.recs["EMP001"] = &dbmodels.LeaveBalance{
		EmployeeID:      "EMP001",
		TotalLeaves:     20,
		UsedLeaves:      18,
		RemainingLeaves: 2,
	}

	_, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}

func TestApproveDebitsBalance(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)

	approved, err := handler.Approve(view.ID, "hr-1", models.HRRole)
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	require.Equal(t, "hr-1", *approved.ApprovedBy)

	balance, err := handler.Balance("EMP001")
	require.NoError(t, err)
	require.Equal(t, 3, balance.UsedLeaves)
	require.Equal(t, 17, balance.RemainingLeaves)
	require.Equal(t, balance.TotalLeaves, balance.UsedLeaves+balance.RemainingLeaves)
}

func TestApproveByEmployeeDenied(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)

	_, err = handler.Approve(view.ID, "EMP002", models.EmployeeRole)
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))
}

func TestRejectKeepsBalance(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)

	rejected, err := handler.Reject(view.ID, "hr-1", models.HRRole, "производственная необходимость")
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusRejected, rejected.Status)
	require.Equal(t, "производственная необходимость", rejected.RejectionReason)

	balance, err := handler.Balance("EMP001")
	require.NoError(t, err)
	require.Equal(t, 0, balance.UsedLeaves)
	require.Equal(t, 20, balance.RemainingLeaves)
}

func TestCancelRefundsBalance(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)
	_, err = handler.Approve(view.ID, "hr-1", models.HRRole)
	require.NoError(t, err)

	cancelled, err := handler.Cancel(view.ID, "EMP001")
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledOn)

	balance, err := handler.Balance("EMP001")
	require.NoError(t, err)
	require.Equal(t, 0, balance.UsedLeaves)
	require.Equal(t, 20, balance.RemainingLeaves)
}

func TestCancelOnlyOwnLeave(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)
	_, err = handler.Approve(view.ID, "hr-1", models.HRRole)
	require.NoError(t, err)

	_, err = handler.Cancel(view.ID, "EMP002")
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))
}

func TestCancelPendingDenied(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)

	_, err = handler.Cancel(view.ID, "EMP001")
	require.Error(t, err)
	require.True(t, models.IsStateError(err))
}

func TestApproveAlreadyProcessed(t *testing.T) {
	handler, _, _ := newLeaveHandler()

	view, err := handler.Apply("EMP001", applyData("2026-09-10", "2026-09-12"))
	require.NoError(t, err)
	_, err = handler.Approve(view.ID, "hr-1", models.HRRole)
	require.NoError(t, err)

	_, err = handler.Approve(view.ID, "admin-1", models.AdminRole)
	require.Error(t, err)
	require.True(t, models.IsStateError(err))
}
