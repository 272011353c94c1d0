package promotion

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	"hrms-backend/lib/approval"
	approvalstore "hrms-backend/lib/approval/store"
	employeestore "hrms-backend/lib/employee/store"
	pdfexport "hrms-backend/lib/export/pdf"
	filestorage "hrms-backend/lib/file-storage"
	promotionhistorystore "hrms-backend/lib/promotion/history-store"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	approvalapimodels "hrms-backend/models/api/approval"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	CreateRequest(initiatorID string, data approvalapimodels.PromotionCreateData) (view *approvalapimodels.RequestView, err error)
	History(employeeID string) (list []dbmodels.PromotionHistory, err error)
	GetLetter(requestID string) (fileBody []byte, err error)
}

var Instance Provider

func NewHandler() {
	handler := &impl{
		approvalStore: approvalstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		historyStore:  promotionhistorystore.NewInstance(db.DB),
	}
	approval.Instance.Register(handler)
	Instance = handler
}

type impl struct {
	approvalStore approvalstore.Provider
	employeeStore employeestore.Provider
	historyStore  promotionhistorystore.Provider
}

func (i *impl) Kind() models.RequestKind {
	return models.KindPromotion
}

func (i *impl) AuditModule() string {
	return models.AuditModulePromotion
}

func (i *impl) CreateRequest(initiatorID string, data approvalapimodels.PromotionCreateData) (*approvalapimodels.RequestView, error) {
	employee, err := i.employeeStore.FindByEmployeeID(data.EmployeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка поиска сотрудника")
	}
	if employee == nil {
		return nil, models.NewNotFoundError("сотрудник %v не найден", data.EmployeeID)
	}
	rec := dbmodels.ApprovalRequest{
		Kind:          models.KindPromotion,
		EmployeeID:    data.EmployeeID,
		OldRole:       data.OldRole,
		NewRole:       data.NewRole,
		EffectiveDate: data.GetEffectiveDate(),
		Reason:        data.Reason,
		InitiatedBy:   initiatorID,
	}
	created, err := approval.Instance.Initiate(rec)
	if err != nil {
		return nil, err
	}
	view := approvalapimodels.RequestConvert(*created)
	return &view, nil
}

func (i *impl) History(employeeID string) ([]dbmodels.PromotionHistory, error) {
	return i.historyStore.ListByEmployee(employeeID)
}

func (i *impl) GetLetter(requestID string) ([]byte, error) {
	rec, err := i.approvalStore.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Kind != models.KindPromotion {
		return nil, models.NewNotFoundError("заявка не найдена")
	}
	if rec.DocumentKey == "" {
		return nil, models.NewNotFoundError("письмо о повышении не сформировано")
	}
	if filestorage.Instance == nil {
		return nil, errors.New("файловое хранилище не настроено")
	}
	return filestorage.Instance.GetDocument(context.Background(), rec.DocumentKey)
}

func (i *impl) Validate(rec dbmodels.ApprovalRequest) error {
	if rec.OldRole == rec.NewRole {
		return models.NewValidationError("новая должность совпадает с текущей")
	}
	today := helpers.TodayUTC()
	if rec.EffectiveDate.Before(today) {
		return models.NewValidationError("дата вступления в силу не может быть в прошлом")
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
		"role": rec.NewRole,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка обновления должности сотрудника")
	}
	approvedBy := ""
	if rec.ApprovedBy != nil {
		approvedBy = *rec.ApprovedBy
	}
	history := dbmodels.PromotionHistory{
		EmployeeID:    rec.EmployeeID,
		OldRole:       rec.OldRole,
		NewRole:       rec.NewRole,
		EffectiveDate: rec.EffectiveDate,
		ApprovedBy:    approvedBy,
	}
	if _, err = i.historyStore.Create(history); err != nil {
		return errors.Wrap(err, "ошибка записи истории повышений")
	}
	// письмо формируется после утверждения, сбой генерации
	// не отменяет само повышение
	i.generateLetter(rec)
	return nil
}

func (i *impl) generateLetter(rec dbmodels.ApprovalRequest) {
	logger := log.WithField("request_id", rec.ID)
	fileBody, err := pdfexport.GeneratePromotionLetter(rec)
	if err != nil {
		logger.WithError(err).Warn("ошибка генерации письма о повышении")
		return
	}
	if filestorage.Instance == nil {
		logger.Warn("письмо о повышении не сохранено, файловое хранилище не настроено")
		return
	}
	key := fmt.Sprintf("promotions/promotion_%v.pdf", rec.ID)
	err = filestorage.Instance.UploadDocument(context.Background(), key, fileBody, "application/pdf")
	if err != nil {
		logger.WithError(err).Warn("ошибка сохранения письма о повышении")
		return
	}
	if err = i.approvalStore.SetDocumentKey(rec.ID, key); err != nil {
		logger.WithError(err).Warn("ошибка привязки письма к заявке")
	}
}
