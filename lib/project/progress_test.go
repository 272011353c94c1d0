package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hrms-backend/models"
	dbmodels "hrms-backend/models/db"
)

func task(status models.TaskStatus, weight int) dbmodels.Task {
	return dbmodels.Task{Status: status, Weight: weight}
}

func TestCalcProgressEmpty(t *testing.T) {
	require.Equal(t, 0.0, CalcProgress(nil))
	require.Equal(t, 0.0, CalcProgress([]dbmodels.Task{}))
}

func TestCalcProgressWeighted(t *testing.T) {
	tasks := []dbmodels.Task{
		task(models.TaskCompleted, 3),
		task(models.TaskInProgress, 2),
		task(models.TaskToDo, 5),
	}
	require.Equal(t, 30.0, CalcProgress(tasks))
}

func TestCalcProgressRounding(t *testing.T) {
	tasks := []dbmodels.Task{
		task(models.TaskCompleted, 1),
		task(models.TaskToDo, 1),
		task(models.TaskToDo, 1),
	}
	// 1/3 дает 33.33 после округления до сотых
	require.Equal(t, 33.33, CalcProgress(tasks))
}

func TestCalcProgressZeroWeightCountsAsOne(t *testing.T) {
	tasks := []dbmodels.Task{
		task(models.TaskCompleted, 0),
		task(models.TaskToDo, 0),
	}
	require.Equal(t, 50.0, CalcProgress(tasks))
}

func TestCalcProgressAllCompleted(t *testing.T) {
	tasks := []dbmodels.Task{
		task(models.TaskCompleted, 2),
		task(models.TaskCompleted, 8),
	}
	require.Equal(t, 100.0, CalcProgress(tasks))
}

func TestProjectVisible(t *testing.T) {
	rec := dbmodels.Project{
		ManagerID: "EMP010",
		Tasks: []dbmodels.Task{
			{AssignedTo: "EMP001", Status: models.TaskToDo, Weight: 1},
		},
	}

	require.True(t, projectVisible(rec, "EMP999", models.AdminRole))
	require.True(t, projectVisible(rec, "EMP999", models.HRRole))
	require.True(t, projectVisible(rec, "EMP010", models.ManagerRole))
	require.False(t, projectVisible(rec, "EMP011", models.ManagerRole))
	require.True(t, projectVisible(rec, "EMP001", models.EmployeeRole))
	require.False(t, projectVisible(rec, "EMP002", models.EmployeeRole))
}
