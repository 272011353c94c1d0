package approval

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	approvalstore "hrms-backend/lib/approval/store"
	"hrms-backend/lib/audit"
	auditstore "hrms-backend/lib/audit/store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type memAudit struct {
	entries []audit.Entry
}

func (m *memAudit) Log(entry audit.Entry) {
	m.entries = append(m.entries, entry)
}

func (m *memAudit) List(filter auditstore.ListFilter) ([]dbmodels.AuditLog, int64, error) {
	return nil, 0, nil
}

func (m *memAudit) Export(filter auditstore.ListFilter) ([]byte, error) {
	return nil, nil
}

type memStore struct {
	seq  int
	recs map[string]*dbmodels.ApprovalRequest
}

func newMemStore() *memStore {
	return &memStore{recs: map[string]*dbmodels.ApprovalRequest{}}
}

func (m *memStore) Create(rec dbmodels.ApprovalRequest) (string, error) {
	m.seq++
	rec.ID = fmt.Sprintf("id-%v", m.seq)
	rec.CreatedAt = time.Now()
	m.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (m *memStore) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	rec, ok := m.recs[id]
	if !ok {
		return nil, nil
	}
	recCopy := *rec
	return &recCopy, nil
}

func (m *memStore) FindPending(kind models.RequestKind, employeeID string) (*dbmodels.ApprovalRequest, error) {
	for _, rec := range m.recs {
		if rec.Kind == kind && rec.EmployeeID == employeeID && rec.Status == models.RequestStatusPending {
			recCopy := *rec
			return &recCopy, nil
		}
	}
	return nil, nil
}

func (m *memStore) CountApprovedInYear(kind models.RequestKind, employeeID string, year int) (int64, error) {
	var count int64
	for _, rec := range m.recs {
		if rec.Kind == kind && rec.EmployeeID == employeeID &&
			rec.Status == models.RequestStatusApproved && rec.EffectiveDate.Year() == year {
			count++
		}
	}
	return count, nil
}

func (m *memStore) List(filter approvalstore.ListFilter) ([]dbmodels.ApprovalRequest, int64, error) {
	list := []dbmodels.ApprovalRequest{}
	for _, rec := range m.recs {
		if filter.Kind != "" && rec.Kind != filter.Kind {
			continue
		}
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, *rec)
	}
	return list, int64(len(list)), nil
}

func (m *memStore) AdvanceStage(id string, from, to models.ApprovalStage) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.Status != models.RequestStatusPending || rec.ApprovalStage != from {
		return false, nil
	}
	rec.ApprovalStage = to
	return true, nil
}

func (m *memStore) Finalize(id string, from models.ApprovalStage, approvedBy, remarks string) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.Status != models.RequestStatusPending || rec.ApprovalStage != from {
		return false, nil
	}
	now := time.Now()
	rec.Status = models.RequestStatusApproved
	rec.ApprovalStage = models.StageNone
	rec.ApprovedBy = &approvedBy
	rec.Remarks = remarks
	rec.DecidedAt = &now
	return true, nil
}

func (m *memStore) RejectPending(id string, rejectedBy, remarks string) (bool, error) {
	rec, ok := m.recs[id]
	if !ok || rec.Status != models.RequestStatusPending {
		return false, nil
	}
	now := time.Now()
	rec.Status = models.RequestStatusRejected
	rec.ApprovalStage = models.StageNone
	rec.RejectedBy = &rejectedBy
	rec.Remarks = remarks
	rec.DecidedAt = &now
	return true, nil
}

func (m *memStore) SetDocumentKey(id, key string) error {
	rec, ok := m.recs[id]
	if !ok {
		return fmt.Errorf("запись не найдена")
	}
	rec.DocumentKey = key
	return nil
}

type testKind struct {
	validateErr error
	finalized   []string
}

func (k *testKind) Kind() models.RequestKind {
	return models.KindSalaryChange
}

func (k *testKind) AuditModule() string {
	return models.AuditModuleSalary
}

func (k *testKind) Validate(rec dbmodels.ApprovalRequest) error {
	return k.validateErr
}

func (k *testKind) Finalize(rec dbmodels.ApprovalRequest) error {
	k.finalized = append(k.finalized, rec.ID)
	return nil
}

func newTestHandler() (*impl, *memStore, *testKind) {
	store := newMemStore()
	handler := &impl{
		store:  store,
		policy: DefaultPolicy(),
		kinds:  map[models.RequestKind]KindHandler{},
	}
	kind := &testKind{}
	handler.Register(kind)
	return handler, store, kind
}

func newSalaryRequest() dbmodels.ApprovalRequest {
	return dbmodels.ApprovalRequest{
		Kind:           models.KindSalaryChange,
		EmployeeID:     "EMP001",
		CurrentSalary:  50000,
		ProposedSalary: 55000,
		EffectiveDate:  time.Now().AddDate(0, 1, 0),
		InitiatedBy:    "manager-1",
	}
}

func TestApprovalFullChain(t *testing.T) {
	handler, _, kind := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusPending, created.Status)
	require.Equal(t, models.StageManager, created.ApprovalStage)

	// руководитель согласует первый этап
	rec, message, err := handler.Approve(created.ID, "manager-1", models.ManagerRole, "")
	require.NoError(t, err)
	require.Equal(t, MsgAdvanced, message)
	require.Equal(t, models.RequestStatusPending, rec.Status)
	require.Equal(t, models.StageHR, rec.ApprovalStage)

	// HR согласует второй этап
	rec, message, err = handler.Approve(created.ID, "hr-1", models.HRRole, "")
	require.NoError(t, err)
	require.Equal(t, MsgAdvanced, message)
	require.Equal(t, models.RequestStatusPending, rec.Status)
	require.Equal(t, models.StageAdmin, rec.ApprovalStage)

	// рядовой сотрудник не может согласовать, заявка не меняется
	_, _, err = handler.Approve(created.ID, "emp-1", models.EmployeeRole, "")
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))
	rec, err = handler.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusPending, rec.Status)
	require.Equal(t, models.StageAdmin, rec.ApprovalStage)

	// администратор утверждает финально
	rec, message, err = handler.Approve(created.ID, "admin-1", models.AdminRole, "молодец")
	require.NoError(t, err)
	require.Equal(t, MsgFullyApproved, message)
	require.Equal(t, models.RequestStatusApproved, rec.Status)
	require.Equal(t, models.StageNone, rec.ApprovalStage)
	require.NotNil(t, rec.ApprovedBy)
	require.Equal(t, "admin-1", *rec.ApprovedBy)
	require.NotNil(t, rec.DecidedAt)
	require.Equal(t, "молодец", rec.Remarks)

	// побочные эффекты выполняются один раз и только после финала
	require.Equal(t, []string{created.ID}, kind.finalized)
}

func TestApprovalAdminCanApproveAnyStage(t *testing.T) {
	handler, _, _ := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	rec, _, err := handler.Approve(created.ID, "admin-1", models.AdminRole, "")
	require.NoError(t, err)
	require.Equal(t, models.StageHR, rec.ApprovalStage)
}

func TestApprovalWrongRoleForStage(t *testing.T) {
	handler, _, _ := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	// HR не может согласовать этап руководителя
	_, _, err = handler.Approve(created.ID, "hr-1", models.HRRole, "")
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))
}

func TestApprovalDuplicatePending(t *testing.T) {
	handler, _, _ := newTestHandler()

	_, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	_, err = handler.Initiate(newSalaryRequest())
	require.Error(t, err)
	require.True(t, models.IsConflictError(err))
}

func TestApprovalTerminalRequest(t *testing.T) {
	handler, _, _ := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	_, err = handler.Reject(created.ID, "hr-1", models.HRRole, "не согласен")
	require.NoError(t, err)

	_, _, err = handler.Approve(created.ID, "admin-1", models.AdminRole, "")
	require.Error(t, err)
	require.True(t, models.IsStateError(err))

	_, err = handler.Reject(created.ID, "admin-1", models.AdminRole, "")
	require.Error(t, err)
	require.True(t, models.IsStateError(err))
}

func TestApprovalRejectAtAnyStage(t *testing.T) {
	handler, _, _ := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	// отклонить может согласующий с любой ролью, этап не важен
	rec, err := handler.Reject(created.ID, "hr-1", models.HRRole, "бюджет исчерпан")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusRejected, rec.Status)
	require.Equal(t, models.StageNone, rec.ApprovalStage)
	require.NotNil(t, rec.RejectedBy)
	require.Equal(t, "hr-1", *rec.RejectedBy)
	require.Equal(t, "бюджет исчерпан", rec.Remarks)
}

func TestApprovalRejectByEmployeeDenied(t *testing.T) {
	handler, _, _ := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	_, err = handler.Reject(created.ID, "emp-1", models.EmployeeRole, "")
	require.Error(t, err)
	require.True(t, models.IsAuthorizationError(err))
}

func TestApprovalNotFound(t *testing.T) {
	handler, _, _ := newTestHandler()

	_, _, err := handler.Approve("missing", "admin-1", models.AdminRole, "")
	require.Error(t, err)
	require.True(t, models.IsNotFoundError(err))

	_, err = handler.GetByID("missing")
	require.Error(t, err)
	require.True(t, models.IsNotFoundError(err))
}

func TestApprovalAuditRemarks(t *testing.T) {
	recorder := &memAudit{}
	audit.Instance = recorder
	defer func() { audit.Instance = nil }()

	handler, _, _ := newTestHandler()

	created, err := handler.Initiate(newSalaryRequest())
	require.NoError(t, err)

	// промежуточное согласование фиксирует переход на следующий этап
	_, _, err = handler.Approve(created.ID, "manager-1", models.ManagerRole, "заслужил")
	require.NoError(t, err)

	_, _, err = handler.Approve(created.ID, "hr-1", models.HRRole, "")
	require.NoError(t, err)

	_, _, err = handler.Approve(created.ID, "admin-1", models.AdminRole, "утверждаю")
	require.NoError(t, err)

	require.Len(t, recorder.entries, 4)
	require.Equal(t, models.AuditActionCreate, recorder.entries[0].Action)
	require.Equal(t, "переведена на этап HR: заслужил", recorder.entries[1].Remarks)
	require.Equal(t, "переведена на этап Администратор", recorder.entries[2].Remarks)
	// финальное утверждение сохраняет комментарий согласующего как есть
	require.Equal(t, "утверждаю", recorder.entries[3].Remarks)
	require.Equal(t, string(models.RequestStatusApproved), recorder.entries[3].Status)
}

func TestApprovalValidateRejectsRequest(t *testing.T) {
	handler, _, kind := newTestHandler()
	kind.validateErr = models.NewValidationError("новый оклад должен быть больше текущего")

	_, err := handler.Initiate(newSalaryRequest())
	require.Error(t, err)
	require.True(t, models.IsValidationError(err))
}
