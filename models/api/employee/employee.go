package employeeapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

const DateFormat = "2006-01-02"

type CreateData struct {
	EmployeeID  string  `json:"employee_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary"`
	JoiningDate string  `json:"joining_date,omitempty"` // YYYY-MM-DD
	ManagerID   *string `json:"manager_id,omitempty"`
}

func (r CreateData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан табельный номер")
	}
	if r.Name == "" {
		return errors.New("не указано имя сотрудника")
	}
	if r.Email == "" {
		return errors.New("не указан email")
	}
	if r.Salary < 0 {
		return errors.New("оклад не может быть отрицательным")
	}
	if r.JoiningDate != "" {
		if _, err := time.Parse(DateFormat, r.JoiningDate); err != nil {
			return errors.New("дата приема должна быть в формате YYYY-MM-DD")
		}
	}
	return nil
}

func (r CreateData) GetJoiningDate() *time.Time {
	if r.JoiningDate == "" {
		return nil
	}
	date, err := time.Parse(DateFormat, r.JoiningDate)
	if err != nil {
		return nil
	}
	return &date
}

type UpdateData struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Department *string  `json:"department,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	Status     *string  `json:"status,omitempty"`
	ManagerID  *string  `json:"manager_id,omitempty"`
}

func (r UpdateData) Validate() error {
	if r.Salary != nil && *r.Salary < 0 {
		return errors.New("оклад не может быть отрицательным")
	}
	if r.Status != nil {
		switch models.EmployeeStatus(*r.Status) {
		case models.EmployeeActive, models.EmployeeInactive, models.EmployeeTerminated:
		default:
			return errors.New("недопустимый статус сотрудника")
		}
	}
	return nil
}

type View struct {
	ID          string                `json:"id"`
	EmployeeID  string                `json:"employee_id"`
	Name        string                `json:"name"`
	Email       string                `json:"email"`
	Role        string                `json:"role"`
	Department  string                `json:"department"`
	Salary      float64               `json:"salary"`
	Status      models.EmployeeStatus `json:"status"`
	JoiningDate string                `json:"joining_date,omitempty"`
	ManagerID   *string               `json:"manager_id,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

func Convert(rec dbmodels.Employee) View {
	view := View{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       rec.Role,
		Department: rec.Department,
		Salary:     rec.Salary,
		Status:     rec.Status,
		ManagerID:  rec.ManagerID,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.JoiningDate != nil {
		view.JoiningDate = rec.JoiningDate.Format(DateFormat)
	}
	return view
}

func ConvertList(recs []dbmodels.Employee) []View {
	views := make([]View, 0, len(recs))
	for _, rec := range recs {
		views = append(views, Convert(rec))
	}
	return views
}
