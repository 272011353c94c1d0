package project

import (
	"math"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

// CalcProgress считает готовность проекта как долю веса завершенных задач.
// Задачи без веса учитываются с весом 1
func CalcProgress(tasks []dbmodels.Task) float64 {
	totalWeight := 0
	completedWeight := 0
	for _, task := range tasks {
		weight := task.Weight
		if weight <= 0 {
			weight = 1
		}
		totalWeight += weight
		if task.Status == models.TaskCompleted {
			completedWeight += weight
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return math.Round(float64(completedWeight)/float64(totalWeight)*100*100) / 100
}
