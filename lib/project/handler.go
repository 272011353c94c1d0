package project

import (
	"github.com/pkg/errors"

	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	projectstore "hrms-backend/lib/project/store"
	taskstore "hrms-backend/lib/project/task-store"
	"hrms-backend/models"
	projectapimodels "hrms-backend/models/api/project"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Create(actorID string, data projectapimodels.CreateData) (view *projectapimodels.View, err error)
	Get(id string) (view *projectapimodels.View, err error)
	List(employeeID string, role models.UserRole) (list []projectapimodels.View, err error)
	Progress(id string) (progress float64, err error)
	AddTask(projectID, actorID string, role models.UserRole, data projectapimodels.TaskCreateData) (view *projectapimodels.TaskView, err error)
	UpdateTaskStatus(taskID, actorID string, role models.UserRole, status models.TaskStatus) (view *projectapimodels.TaskView, err error)
	DeleteTask(taskID, actorID string, role models.UserRole) (err error)
	AddTaskComment(taskID, authorID, comment string) (view *projectapimodels.TaskView, err error)
	MyTasks(employeeID string) (list []projectapimodels.TaskView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:         projectstore.NewInstance(db.DB),
		taskStore:     taskstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         projectstore.Provider
	taskStore     taskstore.Provider
	employeeStore employeestore.Provider
}

func (i *impl) Create(actorID string, data projectapimodels.CreateData) (*projectapimodels.View, error) {
	managerID := data.ManagerID
	if managerID == "" {
		managerID = actorID
	}
	rec := dbmodels.Project{
		Name:        data.Name,
		Description: data.Description,
		ManagerID:   managerID,
		Deadline:    data.GetDeadline(),
		Status:      models.ProjectActive,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания проекта")
	}
	return i.Get(id)
}

func (i *impl) Get(id string) (*projectapimodels.View, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("проект не найден")
	}
	view := projectapimodels.Convert(*rec, CalcProgress(rec.Tasks))
	return &view, nil
}

func (i *impl) List(employeeID string, role models.UserRole) ([]projectapimodels.View, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	views := make([]projectapimodels.View, 0, len(list))
	for _, rec := range list {
		if !projectVisible(rec, employeeID, role) {
			continue
		}
		views = append(views, projectapimodels.Convert(rec, CalcProgress(rec.Tasks)))
	}
	return views, nil
}

// админ и HR видят все проекты, менеджер свои,
// сотрудник только проекты со своими задачами
func projectVisible(rec dbmodels.Project, employeeID string, role models.UserRole) bool {
	switch role {
	case models.AdminRole, models.HRRole:
		return true
	case models.ManagerRole:
		return rec.ManagerID == employeeID
	}
	for _, task := range rec.Tasks {
		if task.AssignedTo == employeeID {
			return true
		}
	}
	return false
}

func (i *impl) Progress(id string) (float64, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, models.NewNotFoundError("проект не найден")
	}
	return CalcProgress(rec.Tasks), nil
}

func (i *impl) AddTask(projectID, actorID string, role models.UserRole, data projectapimodels.TaskCreateData) (*projectapimodels.TaskView, error) {
	rec, err := i.store.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewNotFoundError("проект не найден")
	}
	if role == models.ManagerRole && rec.ManagerID != actorID {
		return nil, models.NewAuthorizationError("задачи добавляет руководитель проекта")
	}
	if data.AssignedTo != "" {
		assignee, err := i.employeeStore.FindByEmployeeID(data.AssignedTo)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка проверки исполнителя")
		}
		if assignee == nil {
			return nil, models.NewValidationError("исполнитель %v не найден", data.AssignedTo)
		}
	}
	task := dbmodels.Task{
		ProjectID:   projectID,
		Title:       data.Title,
		Description: data.Description,
		AssignedTo:  data.AssignedTo,
		Status:      models.TaskToDo,
		Weight:      data.Weight,
		Priority:    data.Priority,
		Deadline:    data.GetDeadline(),
	}
	id, err := i.taskStore.Create(task)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания задачи")
	}
	return i.taskView(id)
}

func (i *impl) UpdateTaskStatus(taskID, actorID string, role models.UserRole, status models.TaskStatus) (*projectapimodels.TaskView, error) {
	if !status.IsValid() {
		return nil, models.NewValidationError("недопустимый статус задачи: %v", status)
	}
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, models.NewNotFoundError("задача не найдена")
	}
	// статус меняет исполнитель, руководящим ролям тоже можно
	if task.AssignedTo != actorID && !role.IsApprover() {
		return nil, models.NewAuthorizationError("менять статус может только исполнитель задачи")
	}
	err = i.taskStore.Update(taskID, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка обновления статуса задачи")
	}
	return i.taskView(taskID)
}

func (i *impl) DeleteTask(taskID, actorID string, role models.UserRole) error {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return models.NewNotFoundError("задача не найдена")
	}
	if role == models.ManagerRole {
		project, err := i.store.GetByID(task.ProjectID)
		if err != nil {
			return err
		}
		if project == nil || project.ManagerID != actorID {
			return models.NewAuthorizationError("задачу удаляет руководитель проекта")
		}
	}
	if err = i.taskStore.Delete(taskID); err != nil {
		return errors.Wrap(err, "ошибка удаления задачи")
	}
	return nil
}

func (i *impl) AddTaskComment(taskID, authorID, comment string) (*projectapimodels.TaskView, error) {
	task, err := i.taskStore.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, models.NewNotFoundError("задача не найдена")
	}
	rec := dbmodels.TaskComment{
		TaskID:   taskID,
		AuthorID: authorID,
		Comment:  comment,
	}
	if _, err = i.taskStore.AddComment(rec); err != nil {
		return nil, errors.Wrap(err, "ошибка добавления комментария")
	}
	return i.taskView(taskID)
}

func (i *impl) MyTasks(employeeID string) ([]projectapimodels.TaskView, error) {
	list, err := i.taskStore.ListByAssignee(employeeID)
	if err != nil {
		return nil, err
	}
	views := make([]projectapimodels.TaskView, 0, len(list))
	for _, task := range list {
		views = append(views, projectapimodels.TaskConvert(task))
	}
	return views, nil
}

func (i *impl) taskView(id string) (*projectapimodels.TaskView, error) {
	task, err := i.taskStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, models.NewNotFoundError("задача не найдена")
	}
	view := projectapimodels.TaskConvert(*task)
	return &view, nil
}
