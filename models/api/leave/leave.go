package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/lib/utils/helpers"
	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

const DateFormat = "2006-01-02"

type ApplyData struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

func (r ApplyData) Validate() error {
	if r.LeaveType == "" {
		return errors.New("не указан тип отпуска")
	}
	start, err := time.Parse(DateFormat, r.StartDate)
	if err != nil {
		return errors.New("дата начала должна быть в формате YYYY-MM-DD")
	}
	end, err := time.Parse(DateFormat, r.EndDate)
	if err != nil {
		return errors.New("дата окончания должна быть в формате YYYY-MM-DD")
	}
	if end.Before(start) {
		return errors.New("дата окончания раньше даты начала")
	}
	if start.Before(helpers.TodayUTC()) {
		return errors.New("дата начала отпуска в прошлом")
	}
	return nil
}

func (r ApplyData) GetDates() (time.Time, time.Time) {
	start, _ := time.Parse(DateFormat, r.StartDate)
	end, _ := time.Parse(DateFormat, r.EndDate)
	return start, end
}

type RejectData struct {
	Reason string `json:"reason"`
}

type BalanceCreateData struct {
	Allowance int `json:"allowance"`
}

type View struct {
	ID              string             `json:"id"`
	EmployeeID      string             `json:"employee_id"`
	LeaveType       string             `json:"leave_type"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	Days            int                `json:"days"`
	Reason          string             `json:"reason,omitempty"`
	Status          models.LeaveStatus `json:"status"`
	AppliedOn       time.Time          `json:"applied_on"`
	ApprovedBy      *string            `json:"approved_by,omitempty"`
	ApprovedOn      *time.Time         `json:"approved_on,omitempty"`
	RejectedBy      *string            `json:"rejected_by,omitempty"`
	RejectedOn      *time.Time         `json:"rejected_on,omitempty"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	CancelledOn     *time.Time         `json:"cancelled_on,omitempty"`
}

func Convert(rec dbmodels.Leave) View {
	return View{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		LeaveType:       rec.LeaveType,
		StartDate:       rec.StartDate.Format(DateFormat),
		EndDate:         rec.EndDate.Format(DateFormat),
		Days:            rec.Days(),
		Reason:          rec.Reason,
		Status:          rec.Status,
		AppliedOn:       rec.AppliedOn,
		ApprovedBy:      rec.ApprovedBy,
		ApprovedOn:      rec.ApprovedOn,
		RejectedBy:      rec.RejectedBy,
		RejectedOn:      rec.RejectedOn,
		RejectionReason: rec.RejectionReason,
		CancelledOn:     rec.CancelledOn,
	}
}

func ConvertList(recs []dbmodels.Leave) []View {
	views := make([]View, 0, len(recs))
	for _, rec := range recs {
		views = append(views, Convert(rec))
	}
	return views
}

type BalanceView struct {
	EmployeeID      string `json:"employee_id"`
	TotalLeaves     int    `json:"total_leaves"`
	UsedLeaves      int    `json:"used_leaves"`
	RemainingLeaves int    `json:"remaining_leaves"`
}

func BalanceConvert(rec dbmodels.LeaveBalance) BalanceView {
	return BalanceView{
		EmployeeID:      rec.EmployeeID,
		TotalLeaves:     rec.TotalLeaves,
		UsedLeaves:      rec.UsedLeaves,
		RemainingLeaves: rec.RemainingLeaves,
	}
}
