package audit

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	auditstore "hrms-backend/lib/audit/store"
	xlsexport "hrms-backend/lib/export/xls"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Entry struct {
	Action      models.AuditAction
	Module      string
	RecordID    string
	PerformedBy string
	Changes     dbmodels.EntityChanges
	Remarks     string
	Status      string
}

type Provider interface {
	// Log пишет запись в журнал. Ошибка записи не возвращается:
	// аудит не должен ломать основную операцию
	Log(entry Entry)
	List(filter auditstore.ListFilter) (list []dbmodels.AuditLog, rowCount int64, err error)
	Export(filter auditstore.ListFilter) (fileBody []byte, err error)
}

var Instance Provider

func NewHandler(DB *gorm.DB) {
	Instance = &impl{
		store: auditstore.NewInstance(DB),
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) Log(entry Entry) {
	rec := dbmodels.AuditLog{
		AuditID:     uuid.NewString(),
		Action:      entry.Action,
		Module:      entry.Module,
		RecordID:    entry.RecordID,
		PerformedBy: entry.PerformedBy,
		Timestamp:   time.Now(),
		Changes:     entry.Changes,
		Remarks:     entry.Remarks,
		Status:      entry.Status,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("module", entry.Module).
			WithField("record_id", entry.RecordID).
			WithError(err).
			Error("ошибка записи в журнал аудита")
	}
}

func (i impl) List(filter auditstore.ListFilter) ([]dbmodels.AuditLog, int64, error) {
	return i.store.List(filter)
}

func (i impl) Export(filter auditstore.ListFilter) ([]byte, error) {
	filter.Limit = 0
	filter.Offset = 0
	list, _, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	return xlsexport.AuditLogExport(list)
}
