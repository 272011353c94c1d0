package meeting

import (
	"github.com/pkg/errors"

	"hrms-backend/db"
	"hrms-backend/lib/audit"
	employeestore "hrms-backend/lib/employee/store"
	meetingstore "hrms-backend/lib/meeting/store"
	"hrms-backend/models"
	meetingapimodels "hrms-backend/models/api/meeting"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(organizerID string, data meetingapimodels.CreateData) (view *meetingapimodels.View, err error)
	Get(id, employeeID string) (view *meetingapimodels.View, err error)
	ListMine(employeeID string) (list []meetingapimodels.View, err error)
	Cancel(id, employeeID string) (view *meetingapimodels.View, err error)
	CheckAvailability(data meetingapimodels.AvailabilityData) (view *meetingapimodels.AvailabilityView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:         meetingstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         meetingstore.Provider
	employeeStore employeestore.Provider
}

func (i *impl) Create(organizerID string, data meetingapimodels.CreateData) (*meetingapimodels.View, error) {
	startMinutes, endMinutes := data.GetMinutes()
	participants := withOrganizer(data.Participants, organizerID)

	for _, participant := range participants {
		employee, err := i.employeeStore.FindByEmployeeID(participant)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка проверки участника")
		}
		if employee == nil {
			return nil, models.NewValidationError("участник %v не найден", participant)
		}
	}

	conflicts, err := i.store.FindConflicts(data.Date, participants, startMinutes, endMinutes)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки занятости участников")
	}
	if len(conflicts) != 0 {
		return nil, models.NewConflictError("у участников уже есть встреча в это время")
	}

	rec := dbmodels.Meeting{
		Title:        data.Title,
		Date:         data.Date,
		OrganizerID:  organizerID,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		Participants: participants,
		Status:       models.MeetingScheduled,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания встречи")
	}
	created, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("созданная встреча не найдена")
	}
	i.auditLog(models.AuditActionCreate, id, organizerID)
	view := meetingapimodels.Convert(*created)
	return &view, nil
}

func (i *impl) Get(id, employeeID string) (*meetingapimodels.View, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("встреча не найдена")
	}
	if !isParticipant(*rec, employeeID) {
		return nil, models.NewAuthorizationError("встреча доступна только участникам")
	}
	view := meetingapimodels.Convert(*rec)
	return &view, nil
}

func (i *impl) ListMine(employeeID string) ([]meetingapimodels.View, error) {
	list, err := i.store.ListForParticipant(employeeID)
	if err != nil {
		return nil, err
	}
	return meetingapimodels.ConvertList(list), nil
}

func (i *impl) Cancel(id, employeeID string) (*meetingapimodels.View, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("встреча не найдена")
	}
	// отменить встречу может только организатор
	if rec.OrganizerID != employeeID {
		return nil, models.NewAuthorizationError("отменить встречу может только организатор")
	}
	if rec.Status != models.MeetingScheduled {
		return nil, models.NewStateError("встреча уже отменена или завершена, статус: %v", rec.Status)
	}
	ok, err := i.store.SetCancelled(id, employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка отмены встречи")
	}
	if !ok {
		return nil, models.NewStateError("встреча уже обработана")
	}
	i.auditLog(models.AuditActionCancel, id, employeeID)
	updated, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	view := meetingapimodels.Convert(*updated)
	return &view, nil
}

func (i *impl) CheckAvailability(data meetingapimodels.AvailabilityData) (*meetingapimodels.AvailabilityView, error) {
	startMinutes, endMinutes := data.GetMinutes()
	conflicts, err := i.store.FindConflicts(data.Date, data.Participants, startMinutes, endMinutes)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка проверки занятости участников")
	}
	view := meetingapimodels.AvailabilityView{
		Available: len(conflicts) == 0,
		Conflicts: meetingapimodels.ConvertList(conflicts),
	}
	return &view, nil
}

func (i *impl) auditLog(action models.AuditAction, recordID, performedBy string) {
	if audit.Instance == nil {
		return
	}
	audit.Instance.Log(audit.Entry{
		Action:      action,
		Module:      models.AuditModuleMeeting,
		RecordID:    recordID,
		PerformedBy: performedBy,
	})
}

func withOrganizer(participants []string, organizerID string) []string {
	result := make([]string, 0, len(participants)+1)
	seen := map[string]bool{}
	for _, participant := range append(participants, organizerID) {
		if participant == "" || seen[participant] {
			continue
		}
		seen[participant] = true
		result = append(result, participant)
	}
	return result
}

func isParticipant(rec dbmodels.Meeting, employeeID string) bool {
	if rec.OrganizerID == employeeID {
		return true
	}
	for _, participant := range rec.Participants {
		if participant == employeeID {
			return true
		}
	}
	return false
}
