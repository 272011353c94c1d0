package approvalapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

const DateFormat = "2006-01-02"

type SalaryCreateData struct {
	EmployeeID     string  `json:"employee_id"`
	CurrentSalary  float64 `json:"current_salary"`
	ProposedSalary float64 `json:"proposed_salary"`
	EffectiveDate  string  `json:"effective_date"` // YYYY-MM-DD
	Reason         string  `json:"reason"`
}

func (r SalaryCreateData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if _, err := time.Parse(DateFormat, r.EffectiveDate); err != nil {
		return errors.New("дата вступления в силу должна быть в формате YYYY-MM-DD")
	}
	return nil
}

func (r SalaryCreateData) GetEffectiveDate() time.Time {
	date, _ := time.Parse(DateFormat, r.EffectiveDate)
	return date
}

type PromotionCreateData struct {
	EmployeeID    string `json:"employee_id"`
	OldRole       string `json:"old_role"`
	NewRole       string `json:"new_role"`
	EffectiveDate string `json:"effective_date"` // YYYY-MM-DD
	Reason        string `json:"reason"`
}

func (r PromotionCreateData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if r.OldRole == "" || r.NewRole == "" {
		return errors.New("не указаны текущая и новая должности")
	}
	if _, err := time.Parse(DateFormat, r.EffectiveDate); err != nil {
		return errors.New("дата вступления в силу должна быть в формате YYYY-MM-DD")
	}
	return nil
}

func (r PromotionCreateData) GetEffectiveDate() time.Time {
	date, _ := time.Parse(DateFormat, r.EffectiveDate)
	return date
}

type DecisionData struct {
	Remarks string `json:"remarks"`
}

type RequestView struct {
	ID                 string               `json:"id"`
	Kind               models.RequestKind   `json:"kind"`
	EmployeeID         string               `json:"employee_id"`
	CurrentSalary      float64              `json:"current_salary,omitempty"`
	ProposedSalary     float64              `json:"proposed_salary,omitempty"`
	SalaryIncrease     float64              `json:"salary_increase,omitempty"`
	IncreasePercentage float64              `json:"increase_percentage,omitempty"`
	OldRole            string               `json:"old_role,omitempty"`
	NewRole            string               `json:"new_role,omitempty"`
	EffectiveDate      string               `json:"effective_date"`
	Reason             string               `json:"reason,omitempty"`
	Status             models.RequestStatus `json:"status"`
	ApprovalStage      string               `json:"approval_stage,omitempty"`
	InitiatedBy        string               `json:"initiated_by"`
	ApprovedBy         *string              `json:"approved_by,omitempty"`
	RejectedBy         *string              `json:"rejected_by,omitempty"`
	Remarks            string               `json:"remarks,omitempty"`
	DecidedAt          *time.Time           `json:"decided_at,omitempty"`
	DocumentKey        string               `json:"document_key,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

func RequestConvert(rec dbmodels.ApprovalRequest) RequestView {
	return RequestView{
		ID:                 rec.ID,
		Kind:               rec.Kind,
		EmployeeID:         rec.EmployeeID,
		CurrentSalary:      rec.CurrentSalary,
		ProposedSalary:     rec.ProposedSalary,
		SalaryIncrease:     rec.SalaryIncrease,
		IncreasePercentage: rec.IncreasePercentage,
		OldRole:            rec.OldRole,
		NewRole:            rec.NewRole,
		EffectiveDate:      rec.EffectiveDate.Format(DateFormat),
		Reason:             rec.Reason,
		Status:             rec.Status,
		ApprovalStage:      string(rec.ApprovalStage),
		InitiatedBy:        rec.InitiatedBy,
		ApprovedBy:         rec.ApprovedBy,
		RejectedBy:         rec.RejectedBy,
		Remarks:            rec.Remarks,
		DecidedAt:          rec.DecidedAt,
		DocumentKey:        rec.DocumentKey,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}

type DecisionView struct {
	Message string      `json:"message"`
	Request RequestView `json:"request"`
}

type SalaryStatisticsView struct {
	Pending  StatisticsRow `json:"pending"`
	Approved StatisticsRow `json:"approved"`
	Rejected StatisticsRow `json:"rejected"`
}

type StatisticsRow struct {
	Count         int64   `json:"count"`
	TotalIncrease float64 `json:"total_increase"`
}
