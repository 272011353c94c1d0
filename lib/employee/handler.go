package employee

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	"hrms-backend/lib/audit"
	usersstore "hrms-backend/lib/auth/users-store"
	employeestore "hrms-backend/lib/employee/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	employeeapimodels "hrms-backend/models/api/employee"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(actorID string, data employeeapimodels.CreateData) (view *employeeapimodels.View, err error)
	Get(employeeID string) (view *employeeapimodels.View, err error)
	Update(actorID, employeeID string, data employeeapimodels.UpdateData) (view *employeeapimodels.View, err error)
	Delete(actorID, employeeID string) error
	List(filter employeestore.ListFilter) (list []employeeapimodels.View, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:      employeestore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store      employeestore.Provider
	usersStore usersstore.Provider
}

func (i *impl) Create(actorID string, data employeeapimodels.CreateData) (*employeeapimodels.View, error) {
	rec := dbmodels.Employee{
		EmployeeID:  data.EmployeeID,
		Name:        data.Name,
		Email:       data.Email,
		Role:        data.Role,
		Department:  data.Department,
		Salary:      data.Salary,
		Status:      models.EmployeeActive,
		JoiningDate: data.GetJoiningDate(),
		ManagerID:   data.ManagerID,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, models.NewConflictError("сотрудник с таким табельным номером или email уже существует")
		}
		return nil, errors.Wrap(err, "ошибка создания сотрудника")
	}
	i.provisionAccount(rec)
	i.auditLog(models.AuditActionCreate, id, actorID)
	created, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("созданный сотрудник не найден")
	}
	view := employeeapimodels.Convert(*created)
	return &view, nil
}

func (i *impl) Get(employeeID string) (*employeeapimodels.View, error) {
	rec, err := i.store.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("сотрудник %v не найден", employeeID)
	}
	view := employeeapimodels.Convert(*rec)
	return &view, nil
}

func (i *impl) Update(actorID, employeeID string, data employeeapimodels.UpdateData) (*employeeapimodels.View, error) {
	rec, err := i.store.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("сотрудник %v не найден", employeeID)
	}
	updMap := map[string]interface{}{}
	changes := dbmodels.EntityChanges{}
	if data.Name != nil && *data.Name != rec.Name {
		updMap["name"] = *data.Name
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: "name", OldValue: rec.Name, NewValue: *data.Name})
	}
	if data.Email != nil && *data.Email != rec.Email {
		updMap["email"] = *data.Email
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: "email", OldValue: rec.Email, NewValue: *data.Email})
	}
	if data.Role != nil && *data.Role != rec.Role {
		updMap["role"] = *data.Role
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: "role", OldValue: rec.Role, NewValue: *data.Role})
	}
	if data.Department != nil && *data.Department != rec.Department {
		updMap["department"] = *data.Department
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: "department", OldValue: rec.Department, NewValue: *data.Department})
	}
	if data.Salary != nil && *data.Salary != rec.Salary {
		updMap["salary"] = *data.Salary
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: "salary", OldValue: rec.Salary, NewValue: *data.Salary})
	}
	if data.Status != nil && models.EmployeeStatus(*data.Status) != rec.Status {
		updMap["status"] = *data.Status
		changes.Data = append(changes.Data, dbmodels.FieldChanges{Field: "status", OldValue: string(rec.Status), NewValue: *data.Status})
	}
	if data.ManagerID != nil {
		updMap["manager_id"] = *data.ManagerID
	}
	if len(updMap) != 0 {
		if err = i.store.Update(rec.ID, updMap); err != nil {
			if helpers.IsUniqueViolation(err) {
				return nil, models.NewConflictError("сотрудник с таким email уже существует")
			}
			return nil, errors.Wrap(err, "ошибка обновления сотрудника")
		}
		i.auditLogChanges(models.AuditActionUpdate, rec.EmployeeID, actorID, changes)
	}
	updated, err := i.store.GetByID(rec.ID)
	if err != nil {
		return nil, err
	}
	view := employeeapimodels.Convert(*updated)
	return &view, nil
}

func (i *impl) Delete(actorID, employeeID string) error {
	rec, err := i.store.FindByEmployeeID(employeeID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.NewNotFoundError("сотрудник %v не найден", employeeID)
	}
	if err = i.store.Delete(rec.ID); err != nil {
		return errors.Wrap(err, "ошибка удаления сотрудника")
	}
	if err = i.usersStore.DeleteByEmployeeID(rec.EmployeeID); err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("ошибка удаления учетной записи сотрудника")
	}
	i.auditLog(models.AuditActionDelete, employeeID, actorID)
	return nil
}

func (i *impl) List(filter employeestore.ListFilter) ([]employeeapimodels.View, int64, error) {
	list, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	return employeeapimodels.ConvertList(list), rowCount, nil
}

// provisionAccount создает учетную запись с логином по табельному номеру.
// Стартовый пароль совпадает с табельным номером, его меняют при первом входе
func (i *impl) provisionAccount(rec dbmodels.Employee) {
	logger := log.WithField("employee_id", rec.EmployeeID)
	hash, err := authutils.HashPassword(rec.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка создания учетной записи сотрудника")
		return
	}
	account := dbmodels.UserAccount{
		Username:   strings.ToLower(rec.EmployeeID),
		Password:   hash,
		Role:       models.EmployeeRole,
		EmployeeID: rec.EmployeeID,
	}
	if _, err = i.usersStore.Create(account); err != nil {
		logger.WithError(err).Error("ошибка создания учетной записи сотрудника")
	}
}

func (i *impl) auditLog(action models.AuditAction, recordID, performedBy string) {
	i.auditLogChanges(action, recordID, performedBy, dbmodels.EntityChanges{})
}

func (i *impl) auditLogChanges(action models.AuditAction, recordID, performedBy string, changes dbmodels.EntityChanges) {
	if audit.Instance == nil {
		return
	}
	audit.Instance.Log(audit.Entry{
		Action:      action,
		Module:      models.AuditModuleEmployee,
		RecordID:    recordID,
		PerformedBy: performedBy,
		Changes:     changes,
	})
}
