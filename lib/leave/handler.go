package leave

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/config"
	"hrms-backend/db"
	"hrms-backend/lib/audit"
	leavebalancestore "hrms-backend/lib/leave/balance-store"
	leavestore "hrms-backend/lib/leave/store"
	"hrms-backend/models"
	leaveapimodels "hrms-backend/models/api/leave"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Apply(employeeID string, data leaveapimodels.ApplyData) (view *leaveapimodels.View, err error)
	Approve(id, actorID string, role models.UserRole) (view *leaveapimodels.View, err error)
	Reject(id, actorID string, role models.UserRole, reason string) (view *leaveapimodels.View, err error)
	Cancel(id, employeeID string) (view *leaveapimodels.View, err error)
	History(employeeID string) (list []leaveapimodels.View, err error)
	ListPending(employeeID string) (list []leaveapimodels.View, err error)
	Balance(employeeID string) (view *leaveapimodels.BalanceView, err error)
	CreateBalance(employeeID string, allowance int) (view *leaveapimodels.BalanceView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:        leavestore.NewInstance(db.DB),
		balanceStore: leavebalancestore.NewInstance(db.DB),
	}
}

type impl struct {
	store        leavestore.Provider
	balanceStore leavebalancestore.Provider
}

func (i *impl) Apply(employeeID string, data leaveapimodels.ApplyData) (*leaveapimodels.View, error) {
	startDate, endDate := data.GetDates()
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	overlapping, err := i.store.FindOverlapping(employeeID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки пересечения отпусков")
	}
	if len(overlapping) != 0 {
		return nil, models.NewConflictError("период пересекается с существующей заявкой на отпуск")
	}

	balance, err := i.ensureBalance(employeeID)
	if err != nil {
		return nil, err
	}
	if balance.RemainingLeaves < days {
		return nil, models.NewValidationError("недостаточно дней отпуска: осталось %v, запрошено %v", balance.RemainingLeaves, days)
	}

	rec := dbmodels.Leave{
		EmployeeID: employeeID,
		LeaveType:  data.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     data.Reason,
		Status:     models.LeaveStatusPending,
		AppliedOn:  time.Now(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания заявки на отпуск")
	}
	created, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("созданная заявка не найдена")
	}
	i.auditLog(models.AuditActionCreate, id, employeeID, "", string(created.Status))
	view := leaveapimodels.Convert(*created)
	return &view, nil
}

func (i *impl) Approve(id, actorID string, role models.UserRole) (*leaveapimodels.View, error) {
	if !role.IsApprover() {
		return nil, models.NewAuthorizationError("роль %v не может согласовать отпуск", role.ToHuman())
	}
	rec, err := i.getPending(id)
	if err != nil {
		return nil, err
	}
	days := rec.Days()

	// сначала списание с условием по остатку, затем смена статуса;
	// при проигрыше гонки списание возвращается
	ok, err := i.balanceStore.Debit(rec.EmployeeID, days)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка списания дней отпуска")
	}
	if !ok {
		return nil, models.NewValidationError("недостаточно дней отпуска")
	}
	ok, err = i.store.SetApproved(id, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка согласования отпуска")
	}
	if !ok {
		if _, refundErr := i.balanceStore.Refund(rec.EmployeeID, days); refundErr != nil {
			log.WithField("leave_id", id).WithError(refundErr).Error("ошибка возврата дней отпуска")
		}
		return nil, models.NewStateError("заявка уже обработана")
	}
	i.auditLog(models.AuditActionApprove, id, actorID, "", string(models.LeaveStatusApproved))
	return i.view(id)
}

func (i *impl) Reject(id, actorID string, role models.UserRole, reason string) (*leaveapimodels.View, error) {
	if !role.IsApprover() {
		return nil, models.NewAuthorizationError("роль %v не может отклонить отпуск", role.ToHuman())
	}
	if _, err := i.getPending(id); err != nil {
		return nil, err
	}
	ok, err := i.store.SetRejected(id, actorID, reason)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка отклонения отпуска")
	}
	if !ok {
		return nil, models.NewStateError("заявка уже обработана")
	}
	i.auditLog(models.AuditActionReject, id, actorID, reason, string(models.LeaveStatusRejected))
	return i.view(id)
}

func (i *impl) Cancel(id, employeeID string) (*leaveapimodels.View, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("заявка на отпуск не найдена")
	}
	if rec.EmployeeID != employeeID {
		return nil, models.NewAuthorizationError("отменить можно только свой отпуск")
	}
	if rec.Status != models.LeaveStatusApproved {
		return nil, models.NewStateError("отменить можно только согласованный отпуск, статус: %v", rec.Status)
	}
	ok, err := i.store.SetCancelled(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка отмены отпуска")
	}
	if !ok {
		return nil, models.NewStateError("заявка уже обработана")
	}
	if _, err = i.balanceStore.Refund(rec.EmployeeID, rec.Days()); err != nil {
		log.WithField("leave_id", id).WithError(err).Error("ошибка возврата дней отпуска")
	}
	i.auditLog(models.AuditActionCancel, id, employeeID, "", string(models.LeaveStatusCancelled))
	return i.view(id)
}

func (i *impl) History(employeeID string) ([]leaveapimodels.View, error) {
	list, err := i.store.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return leaveapimodels.ConvertList(list), nil
}

func (i *impl) ListPending(employeeID string) ([]leaveapimodels.View, error) {
	list, err := i.store.ListByStatus(models.LeaveStatusPending, employeeID)
	if err != nil {
		return nil, err
	}
	return leaveapimodels.ConvertList(list), nil
}

func (i *impl) Balance(employeeID string) (*leaveapimodels.BalanceView, error) {
	balance, err := i.ensureBalance(employeeID)
	if err != nil {
		return nil, err
	}
	view := leaveapimodels.BalanceConvert(*balance)
	return &view, nil
}

func (i *impl) CreateBalance(employeeID string, allowance int) (*leaveapimodels.BalanceView, error) {
	existing, err := i.balanceStore.GetByEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения баланса отпусков")
	}
	if existing != nil {
		return nil, models.NewConflictError("баланс отпусков сотрудника %v уже создан", employeeID)
	}
	if allowance <= 0 {
		allowance = defaultAllowance()
	}
	rec := dbmodels.LeaveBalance{
		EmployeeID:      employeeID,
		TotalLeaves:     allowance,
		UsedLeaves:      0,
		RemainingLeaves: allowance,
	}
	if _, err = i.balanceStore.Create(rec); err != nil {
		return nil, errors.Wrap(err, "ошибка создания баланса отпусков")
	}
	return i.Balance(employeeID)
}

func (i *impl) ensureBalance(employeeID string) (*dbmodels.LeaveBalance, error) {
	balance, err := i.balanceStore.GetByEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения баланса отпусков")
	}
	if balance != nil {
		return balance, nil
	}
	allowance := defaultAllowance()
	rec := dbmodels.LeaveBalance{
		EmployeeID:      employeeID,
		TotalLeaves:     allowance,
		UsedLeaves:      0,
		RemainingLeaves: allowance,
	}
	if _, err = i.balanceStore.Create(rec); err != nil {
		return nil, errors.Wrap(err, "ошибка создания баланса отпусков")
	}
	return i.balanceStore.GetByEmployee(employeeID)
}

func (i *impl) getPending(id string) (*dbmodels.Leave, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("заявка на отпуск не найдена")
	}
	if rec.Status != models.LeaveStatusPending {
		return nil, models.NewStateError("заявка уже обработана, статус: %v", rec.Status)
	}
	return rec, nil
}

func (i *impl) view(id string) (*leaveapimodels.View, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("заявка на отпуск не найдена")
	}
	view := leaveapimodels.Convert(*rec)
	return &view, nil
}

func (i *impl) auditLog(action models.AuditAction, recordID, performedBy, remarks, status string) {
	if audit.Instance == nil {
		return
	}
	audit.Instance.Log(audit.Entry{
		Action:      action,
		Module:      models.AuditModuleLeave,
		RecordID:    recordID,
		PerformedBy: performedBy,
		Remarks:     remarks,
		Status:      status,
	})
}

func defaultAllowance() int {
	if config.Conf != nil && config.Conf.Leave.AnnualAllowance > 0 {
		return config.Conf.Leave.AnnualAllowance
	}
	return 20
}
