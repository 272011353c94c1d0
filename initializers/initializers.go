package initializers

import (
	"hrms-backend/config"
	"hrms-backend/db"
	"hrms-backend/fiberlog"
	analyticshandler "hrms-backend/lib/analytics"
	approvalhandler "hrms-backend/lib/approval"
	audithandler "hrms-backend/lib/audit"
	authhandler "hrms-backend/lib/auth"
	employeehandler "hrms-backend/lib/employee"
	leavehandler "hrms-backend/lib/leave"
	meetinghandler "hrms-backend/lib/meeting"
	projecthandler "hrms-backend/lib/project"
	promotionhandler "hrms-backend/lib/promotion"
	salaryhandler "hrms-backend/lib/salary"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	audithandler.NewHandler(db.DB)
	// движок согласований регистрируется раньше обработчиков заявок
	approvalhandler.NewHandler()
	salaryhandler.NewHandler()
	promotionhandler.NewHandler()
	leavehandler.NewHandler()
	meetinghandler.NewHandler()
	employeehandler.NewHandler()
	authhandler.NewHandler()
	projecthandler.NewHandler()
	analyticshandler.NewHandler()
}
