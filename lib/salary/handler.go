package salary

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	"hrms-backend/lib/approval"
	approvalstore "hrms-backend/lib/approval/store"
	employeestore "hrms-backend/lib/employee/store"
	salaryhistorystore "hrms-backend/lib/salary/history-store"
	"hrms-backend/lib/smtp"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	approvalapimodels "hrms-backend/models/api/approval"
	dbmodels "hrms-backend/models/db"
)

// MaxIncreasePercent - предел разового повышения оклада
const MaxIncreasePercent = 50.0

// MaxApprovedPerYear - лимит утвержденных повышений за календарный год
const MaxApprovedPerYear = 2

type Provider interface {
	CreateRequest(initiatorID string, data approvalapimodels.SalaryCreateData) (view *approvalapimodels.RequestView, err error)
	History(employeeID string) (list []dbmodels.SalaryHistory, err error)
}

var Instance Provider

func NewHandler() {
	handler := &impl{
		approvalStore: approvalstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		historyStore:  salaryhistorystore.NewInstance(db.DB),
	}
	approval.Instance.Register(handler)
	Instance = handler
}

type impl struct {
	approvalStore approvalstore.Provider
	employeeStore employeestore.Provider
	historyStore  salaryhistorystore.Provider
}

func (i *impl) Kind() models.RequestKind {
	return models.KindSalaryChange
}

func (i *impl) AuditModule() string {
	return models.AuditModuleSalary
}

func (i *impl) CreateRequest(initiatorID string, data approvalapimodels.SalaryCreateData) (*approvalapimodels.RequestView, error) {
	employee, err := i.employeeStore.FindByEmployeeID(data.EmployeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска сотрудника")
	}
	if employee == nil {
		return nil, models.NewNotFoundError("сотрудник %v не найден", data.EmployeeID)
	}
	increase := data.ProposedSalary - employee.Salary
	percentage := 0.0
	if employee.Salary > 0 {
		percentage = round2(increase / employee.Salary * 100)
	}
	rec := dbmodels.ApprovalRequest{
		Kind:               models.KindSalaryChange,
		EmployeeID:         data.EmployeeID,
		CurrentSalary:      employee.Salary,
		ProposedSalary:     data.ProposedSalary,
		SalaryIncrease:     round2(increase),
		IncreasePercentage: percentage,
		EffectiveDate:      data.GetEffectiveDate(),
		Reason:             data.Reason,
		InitiatedBy:        initiatorID,
	}
	created, err := approval.Instance.Initiate(rec)
	if err != nil {
		return nil, err
	}
	view := approvalapimodels.RequestConvert(*created)
	return &view, nil
}

func (i *impl) History(employeeID string) ([]dbmodels.SalaryHistory, error) {
	return i.historyStore.ListByEmployee(employeeID)
}

func (i *impl) Validate(rec dbmodels.ApprovalRequest) error {
	if rec.CurrentSalary <= 0 || rec.ProposedSalary <= 0 {
		return models.NewValidationError("оклад должен быть положительным")
	}
	if rec.ProposedSalary <= rec.CurrentSalary {
		return models.NewValidationError("новый оклад должен быть больше текущего")
	}
	percentage := (rec.ProposedSalary - rec.CurrentSalary) / rec.CurrentSalary * 100
	if percentage > MaxIncreasePercent {
		return models.NewValidationError("повышение не может превышать %v%%", MaxIncreasePercent)
	}
	today := helpers.TodayUTC()
	if rec.EffectiveDate.Before(today) {
		return models.NewValidationError("дата вступления в силу не может быть в прошлом")
	}
	count, err := i.approvalStore.CountApprovedInYear(models.KindSalaryChange, rec.EmployeeID, rec.EffectiveDate.Year())
	if err != nil {
		return errors.Wrap(err, "ошибка проверки лимита повышений")
	}
	if count >= MaxApprovedPerYear {
		return models.NewValidationError("за год допускается не более %v повышений оклада", MaxApprovedPerYear)
	}
	return nil
}

func (i *impl) Finalize(rec dbmodels.ApprovalRequest) error {
	employee, err := i.employeeStore.FindByEmployeeID(rec.EmployeeID)
	if err != nil {
		return errors.Wrap(err, "ошибка поиска сотрудника")
	}
	if employee == nil {
		return errors.Errorf("сотрудник %v не найден", rec.EmployeeID)
	}
	err = i.employeeStore.Update(employee.ID, map[string]interface{}{
		"salary": rec.ProposedSalary,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления оклада сотрудника")
	}
	approvedBy := ""
	if rec.ApprovedBy != nil {
		approvedBy = *rec.ApprovedBy
	}
	history := dbmodels.SalaryHistory{
		EmployeeID:         rec.EmployeeID,
		OldSalary:          rec.CurrentSalary,
		NewSalary:          rec.ProposedSalary,
		SalaryIncrease:     rec.SalaryIncrease,
		IncreasePercentage: rec.IncreasePercentage,
		EffectiveDate:      rec.EffectiveDate,
		Reason:             rec.Reason,
		ApprovedBy:         approvedBy,
	}
	if _, err = i.historyStore.Create(history); err != nil {
		return errors.Wrap(err, "ошибка записи истории окладов")
	}
	i.notify(*employee, rec)
	return nil
}

func (i *impl) notify(employee dbmodels.Employee, rec dbmodels.ApprovalRequest) {
	if smtp.Instance == nil || employee.Email == "" {
		return
	}
	message := fmt.Sprintf("Ваш оклад изменен с %v на %v, дата вступления в силу %v.",
		rec.CurrentSalary, rec.ProposedSalary, rec.EffectiveDate.Format("2006-01-02"))
	if err := smtp.Instance.SendEMail(employee.Email, "Изменение оклада", message); err != nil {
		log.
			WithField("employee_id", employee.EmployeeID).
			WithError(err).
			Error("ошибка отправки уведомления об изменении оклада")
	}
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
