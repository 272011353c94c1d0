package auditapimodels

import (
	"time"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

type Filter struct {
	Module      string `query:"module"`
	Action      string `query:"action"`
	PerformedBy string `query:"performed_by"`
	RecordID    string `query:"record_id"`
	DateFrom    string `query:"date_from"` // YYYY-MM-DD
	DateTo      string `query:"date_to"`   // YYYY-MM-DD
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

type View struct {
	AuditID     string                 `json:"audit_id"`
	Action      models.AuditAction     `json:"action"`
	Module      string                 `json:"module"`
	RecordID    string                 `json:"record_id"`
	PerformedBy string                 `json:"performed_by"`
	Timestamp   time.Time              `json:"timestamp"`
	Changes     dbmodels.EntityChanges `json:"changes,omitempty"`
	Remarks     string                 `json:"remarks,omitempty"`
	Status      string                 `json:"status,omitempty"`
}

func Convert(rec dbmodels.AuditLog) View {
	return View{
		AuditID:     rec.AuditID,
		Action:      rec.Action,
		Module:      rec.Module,
		RecordID:    rec.RecordID,
		PerformedBy: rec.PerformedBy,
		Timestamp:   rec.Timestamp,
		Changes:     rec.Changes,
		Remarks:     rec.Remarks,
		Status:      rec.Status,
	}
}

func ConvertList(recs []dbmodels.AuditLog) []View {
	views := make([]View, 0, len(recs))
	for _, rec := range recs {
		views = append(views, Convert(rec))
	}
	return views
}
