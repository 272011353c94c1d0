package models

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// ApprovalStage - этап согласования, пустое значение допустимо
// только у заявок в терминальном статусе
type ApprovalStage string

const (
	StageManager ApprovalStage = "MANAGER"
	StageHR      ApprovalStage = "HR"
	StageAdmin   ApprovalStage = "ADMIN"
	StageNone    ApprovalStage = ""
)

var stageHumanName = map[ApprovalStage]string{
	StageManager: "Руководитель",
	StageHR:      "HR",
	StageAdmin:   "Администратор",
}

func (s ApprovalStage) ToHuman() string {
	if human, exist := stageHumanName[s]; exist {
		return human
	}
	return string(s)
}

type RequestKind string

const (
	KindSalaryChange RequestKind = "salary"
	KindPromotion    RequestKind = "promotion"
)

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "Pending"
	LeaveStatusApproved  LeaveStatus = "Approved"
	LeaveStatusRejected  LeaveStatus = "Rejected"
	LeaveStatusCancelled LeaveStatus = "Cancelled"
)

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "Scheduled"
	MeetingCompleted MeetingStatus = "Completed"
	MeetingCancelled MeetingStatus = "Cancelled"
)

type TaskStatus string

const (
	TaskToDo       TaskStatus = "To-Do"
	TaskInProgress TaskStatus = "In-Progress"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) IsValid() bool {
	return s == TaskToDo || s == TaskInProgress || s == TaskCompleted
}

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOnHold    ProjectStatus = "On-Hold"
)

type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
	AuditActionCancel  AuditAction = "CANCEL"
	AuditActionDelete  AuditAction = "DELETE"
)

const (
	AuditModuleSalary    = "salary"
	AuditModulePromotion = "promotion"
	AuditModuleLeave     = "leave"
	AuditModuleEmployee  = "employee"
	AuditModuleMeeting   = "meeting"
)
