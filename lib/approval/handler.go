package approval

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hrms-backend/db"
	"hrms-backend/lib/audit"
	approvalstore "hrms-backend/lib/approval/store"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

// KindHandler - обработчик конкретного вида заявки.
// Движок согласования не знает про оклады и повышения,
// вся доменная логика живет в обработчиках видов
type KindHandler interface {
	Kind() models.RequestKind
	AuditModule() string
	// Validate проверяет доменные правила до создания заявки
	Validate(rec dbmodels.ApprovalRequest) error
	// Finalize выполняет побочные эффекты после финального утверждения.
	// Ошибка не откатывает утверждение, она только логируется
	Finalize(rec dbmodels.ApprovalRequest) error
}

// тексты результата согласования, отличают промежуточный этап от финала
const (
	MsgAdvanced      = "заявка согласована и передана на следующий этап"
	MsgFullyApproved = "заявка полностью согласована"
)

type Provider interface {
	Register(kind KindHandler)
	Initiate(rec dbmodels.ApprovalRequest) (*dbmodels.ApprovalRequest, error)
	// Approve возвращает заявку и пояснение: промежуточный этап или финальное утверждение
	Approve(id, actorID string, role models.UserRole, remarks string) (rec *dbmodels.ApprovalRequest, message string, err error)
	Reject(id, actorID string, role models.UserRole, remarks string) (*dbmodels.ApprovalRequest, error)
	GetByID(id string) (*dbmodels.ApprovalRequest, error)
	List(filter approvalstore.ListFilter) (list []dbmodels.ApprovalRequest, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:  approvalstore.NewInstance(db.DB),
		policy: DefaultPolicy(),
		kinds:  map[models.RequestKind]KindHandler{},
	}
}

type impl struct {
	store  approvalstore.Provider
	policy Policy
	kinds  map[models.RequestKind]KindHandler
}

func (i *impl) Register(kind KindHandler) {
	i.kinds[kind.Kind()] = kind
}

func (i *impl) Initiate(rec dbmodels.ApprovalRequest) (*dbmodels.ApprovalRequest, error) {
	kind, ok := i.kinds[rec.Kind]
	if !ok {
		return nil, errors.Errorf("неизвестный вид заявки: %v", rec.Kind)
	}
	if err := kind.Validate(rec); err != nil {
		return nil, err
	}
	existedRec, err := i.store.FindPending(rec.Kind, rec.EmployeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки активных заявок")
	}
	if existedRec != nil {
		return nil, models.NewConflictError("по сотруднику уже есть заявка на согласовании")
	}
	rec.Status = models.RequestStatusPending
	rec.ApprovalStage = i.policy.FirstStage()
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания заявки")
	}
	created, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("созданная заявка не найдена")
	}
	i.auditLog(audit.Entry{
		Action:      models.AuditActionCreate,
		Module:      kind.AuditModule(),
		RecordID:    id,
		PerformedBy: rec.InitiatedBy,
		Status:      string(created.Status),
	})
	return created, nil
}

func (i *impl) Approve(id, actorID string, role models.UserRole, remarks string) (*dbmodels.ApprovalRequest, string, error) {
	rec, kind, err := i.getForDecision(id)
	if err != nil {
		return nil, "", err
	}
	if !i.policy.IsAuthorized(rec.ApprovalStage, role) {
		return nil, "", models.NewAuthorizationError("роль %v не может согласовать этап %v", role.ToHuman(), rec.ApprovalStage.ToHuman())
	}
	nextStage, hasNext := i.policy.NextStage(rec.ApprovalStage)
	var ok bool
	if hasNext {
		ok, err = i.store.AdvanceStage(id, rec.ApprovalStage, nextStage)
	} else {
		ok, err = i.store.Finalize(id, rec.ApprovalStage, actorID, remarks)
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка согласования заявки")
	}
	if !ok {
		// заявку успели обработать параллельно
		return nil, "", models.NewStateError("заявка уже обработана")
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if updated == nil {
		return nil, "", models.NewNotFoundError("заявка не найдена")
	}
	if !hasNext {
		if err = kind.Finalize(*updated); err != nil {
			log.
				WithField("request_id", id).
				WithError(err).
				Warn("ошибка пострегламентных действий по утвержденной заявке")
		}
	}
	message := MsgFullyApproved
	auditRemarks := remarks
	if hasNext {
		message = MsgAdvanced
		auditRemarks = fmt.Sprintf("переведена на этап %v", nextStage.ToHuman())
		if remarks != "" {
			auditRemarks = auditRemarks + ": " + remarks
		}
	}
	i.auditLog(audit.Entry{
		Action:      models.AuditActionApprove,
		Module:      kind.AuditModule(),
		RecordID:    id,
		PerformedBy: actorID,
		Remarks:     auditRemarks,
		Status:      string(updated.Status),
	})
	return updated, message, nil
}

func (i *impl) Reject(id, actorID string, role models.UserRole, remarks string) (*dbmodels.ApprovalRequest, error) {
	_, kind, err := i.getForDecision(id)
	if err != nil {
		return nil, err
	}
	// отклонить заявку может любой согласующий на любом этапе
	if !role.IsApprover() {
		return nil, models.NewAuthorizationError("роль %v не может отклонить заявку", role.ToHuman())
	}
	ok, err := i.store.RejectPending(id, actorID, remarks)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка отклонения заявки")
	}
	if !ok {
		return nil, models.NewStateError("заявка уже обработана")
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("заявка не найдена")
	}
	i.auditLog(audit.Entry{
		Action:      models.AuditActionReject,
		Module:      kind.AuditModule(),
		RecordID:    id,
		PerformedBy: actorID,
		Remarks:     remarks,
		Status:      string(updated.Status),
	})
	return updated, nil
}

func (i *impl) GetByID(id string) (*dbmodels.ApprovalRequest, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("заявка не найдена")
	}
	return rec, nil
}

func (i *impl) List(filter approvalstore.ListFilter) ([]dbmodels.ApprovalRequest, int64, error) {
	return i.store.List(filter)
}

func (i *impl) getForDecision(id string) (*dbmodels.ApprovalRequest, KindHandler, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, models.NewNotFoundError("заявка не найдена")
	}
	kind, ok := i.kinds[rec.Kind]
	if !ok {
		return nil, nil, errors.Errorf("неизвестный вид заявки: %v", rec.Kind)
	}
	if rec.Status.IsTerminal() {
		return nil, nil, models.NewStateError("заявка уже обработана, статус: %v", rec.Status)
	}
	return rec, kind, nil
}

func (i *impl) auditLog(entry audit.Entry) {
	if audit.Instance == nil {
		return
	}
	audit.Instance.Log(entry)
}
