package models

import (
	"strings"

	"github.com/pkg/errors"
)

type UserRole string

const (
	AdminRole    UserRole = "ADMIN"
	HRRole       UserRole = "HR"
	ManagerRole  UserRole = "MANAGER"
	EmployeeRole UserRole = "EMPLOYEE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:    "Администратор",
	HRRole:       "HR-специалист",
	ManagerRole:  "Руководитель",
	EmployeeRole: "Сотрудник",
}

// ParseRole нормализует роль один раз на границе аутентификации,
// дальше по коду роли сравниваются только как закрытый enum
func ParseRole(value string) (UserRole, error) {
	role := UserRole(strings.ToUpper(strings.TrimSpace(value)))
	switch role {
	case AdminRole, HRRole, ManagerRole, EmployeeRole:
		return role, nil
	}
	return "", errors.Errorf("неизвестная роль: %v", value)
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsApprover() bool {
	return r == AdminRole || r == HRRole || r == ManagerRole
}

const SystemUser = "Система"

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "ACTIVE"
	EmployeeInactive   EmployeeStatus = "INACTIVE"
	EmployeeTerminated EmployeeStatus = "TERMINATED"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeActive:     "Работает",
	EmployeeInactive:   "Неактивен",
	EmployeeTerminated: "Уволен",
}

func (s EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
