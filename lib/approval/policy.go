package approval

import (
	"hrms-backend/models"
)

// Policy описывает цепочку согласования и допустимые роли на каждом этапе.
// Политика неизменяемая и задается один раз при создании обработчика,
// администратор перечислен явно на каждом этапе
type Policy struct {
	stages  []models.ApprovalStage
	allowed map[models.ApprovalStage][]models.UserRole
}

func NewPolicy(stages []models.ApprovalStage, allowed map[models.ApprovalStage][]models.UserRole) Policy {
	stagesCopy := make([]models.ApprovalStage, len(stages))
	copy(stagesCopy, stages)
	allowedCopy := make(map[models.ApprovalStage][]models.UserRole, len(allowed))
	for stage, roles := range allowed {
		rolesCopy := make([]models.UserRole, len(roles))
		copy(rolesCopy, roles)
		allowedCopy[stage] = rolesCopy
	}
	return Policy{
		stages:  stagesCopy,
		allowed: allowedCopy,
	}
}

// DefaultPolicy - трехэтапная цепочка: руководитель, HR, администратор
func DefaultPolicy() Policy {
	return NewPolicy(
		[]models.ApprovalStage{models.StageManager, models.StageHR, models.StageAdmin},
		map[models.ApprovalStage][]models.UserRole{
			models.StageManager: {models.ManagerRole, models.AdminRole},
			models.StageHR:      {models.HRRole, models.AdminRole},
			models.StageAdmin:   {models.AdminRole},
		},
	)
}

func (p Policy) FirstStage() models.ApprovalStage {
	if len(p.stages) == 0 {
		return models.StageNone
	}
	return p.stages[0]
}

// NextStage возвращает следующий этап после указанного,
// второе значение false на последнем этапе
func (p Policy) NextStage(stage models.ApprovalStage) (models.ApprovalStage, bool) {
	for idx, known := range p.stages {
		if known == stage {
			if idx+1 < len(p.stages) {
				return p.stages[idx+1], true
			}
			return models.StageNone, false
		}
	}
	return models.StageNone, false
}

func (p Policy) IsLast(stage models.ApprovalStage) bool {
	return len(p.stages) > 0 && p.stages[len(p.stages)-1] == stage
}

func (p Policy) IsAuthorized(stage models.ApprovalStage, role models.UserRole) bool {
	for _, allowed := range p.allowed[stage] {
		if allowed == role {
			return true
		}
	}
	return false
}
