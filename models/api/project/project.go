package projectapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

const DateFormat = "2006-01-02"

type CreateData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManagerID   string `json:"manager_id"`
	Deadline    string `json:"deadline,omitempty"` // YYYY-MM-DD
}

func (r CreateData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название проекта")
	}
	if r.Deadline != "" {
		if _, err := time.Parse(DateFormat, r.Deadline); err != nil {
			return errors.New("дедлайн должен быть в формате YYYY-MM-DD")
		}
	}
	return nil
}

func (r CreateData) GetDeadline() *time.Time {
	if r.Deadline == "" {
		return nil
	}
	date, err := time.Parse(DateFormat, r.Deadline)
	if err != nil {
		return nil
	}
	return &date
}

type TaskCreateData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	Weight      int    `json:"weight"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline,omitempty"`
}

func (r TaskCreateData) Validate() error {
	if r.Title == "" {
		return errors.New("не указано название задачи")
	}
	if r.Weight <= 0 {
		return errors.New("вес задачи должен быть положительным")
	}
	if r.Deadline != "" {
		if _, err := time.Parse(DateFormat, r.Deadline); err != nil {
			return errors.New("дедлайн должен быть в формате YYYY-MM-DD")
		}
	}
	return nil
}

func (r TaskCreateData) GetDeadline() *time.Time {
	if r.Deadline == "" {
		return nil
	}
	date, err := time.Parse(DateFormat, r.Deadline)
	if err != nil {
		return nil
	}
	return &date
}

type TaskStatusData struct {
	Status string `json:"status"`
}

func (r TaskStatusData) Validate() error {
	if !models.TaskStatus(r.Status).IsValid() {
		return errors.New("недопустимый статус задачи")
	}
	return nil
}

type TaskCommentData struct {
	Comment string `json:"comment"`
}

func (r TaskCommentData) Validate() error {
	if r.Comment == "" {
		return errors.New("пустой комментарий")
	}
	return nil
}

type TaskView struct {
	ID          string            `json:"id"`
	ProjectID   string            `json:"project_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
	Status      models.TaskStatus `json:"status"`
	Weight      int               `json:"weight"`
	Priority    string            `json:"priority,omitempty"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Comments    []TaskCommentView `json:"comments,omitempty"`
}

type TaskCommentView struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func TaskConvert(rec dbmodels.Task) TaskView {
	view := TaskView{
		ID:          rec.ID,
		ProjectID:   rec.ProjectID,
		Title:       rec.Title,
		Description: rec.Description,
		AssignedTo:  rec.AssignedTo,
		Status:      rec.Status,
		Weight:      rec.Weight,
		Priority:    rec.Priority,
		Deadline:    rec.Deadline,
	}
	for _, comment := range rec.Comments {
		view.Comments = append(view.Comments, TaskCommentView{
			ID:        comment.ID,
			AuthorID:  comment.AuthorID,
			Comment:   comment.Comment,
			CreatedAt: comment.CreatedAt,
		})
	}
	return view
}

type View struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	ManagerID   string               `json:"manager_id"`
	Deadline    *time.Time           `json:"deadline,omitempty"`
	Status      models.ProjectStatus `json:"status"`
	Progress    float64              `json:"progress"`
	Tasks       []TaskView           `json:"tasks,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func Convert(rec dbmodels.Project, progress float64) View {
	view := View{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		ManagerID:   rec.ManagerID,
		Deadline:    rec.Deadline,
		Status:      rec.Status,
		Progress:    progress,
		CreatedAt:   rec.CreatedAt,
	}
	for _, task := range rec.Tasks {
		view.Tasks = append(view.Tasks, TaskConvert(task))
	}
	return view
}
