package analytics

import (
	"gorm.io/gorm"

	"hrms-backend/db"
	"hrms-backend/models"
	approvalapimodels "hrms-backend/models/api/approval"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	SalaryStatistics() (view *approvalapimodels.SalaryStatisticsView, err error)
	DepartmentHeadcount() (rows []DepartmentRow, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		db: db.DB,
	}
}

type impl struct {
	db *gorm.DB
}

type statusRow struct {
	Status        models.RequestStatus
	Count         int64
	TotalIncrease float64
}

type DepartmentRow struct {
	Department string  `json:"department"`
	Count      int64   `json:"count"`
	AvgSalary  float64 `json:"avg_salary"`
}

func (i impl) SalaryStatistics() (*approvalapimodels.SalaryStatisticsView, error) {
	rows := []statusRow{}
	err := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Select("status, count(*) as count, coalesce(sum(salary_increase), 0) as total_increase").
		Where("kind = ?", models.KindSalaryChange).
		Group("status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	view := approvalapimodels.SalaryStatisticsView{}
	for _, row := range rows {
		statRow := approvalapimodels.StatisticsRow{
			Count:         row.Count,
			TotalIncrease: row.TotalIncrease,
		}
		switch row.Status {
		case models.RequestStatusPending:
			view.Pending = statRow
		case models.RequestStatusApproved:
			view.Approved = statRow
		case models.RequestStatusRejected:
			view.Rejected = statRow
		}
	}
	return &view, nil
}

func (i impl) DepartmentHeadcount() ([]DepartmentRow, error) {
	rows := []DepartmentRow{}
	err := i.db.
		Model(&dbmodels.Employee{}).
		Select("department, count(*) as count, coalesce(avg(salary), 0) as avg_salary").
		Where("status = ?", models.EmployeeActive).
		Group("department").
		Order("department").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
