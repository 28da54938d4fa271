package initializers

import (
	"context"

	"solventek-backend/config"
	"solventek-backend/fiberlog"
	applicationhandler "solventek-backend/lib/application"
	authhandler "solventek-backend/lib/auth"
	xlsexport "solventek-backend/lib/export/xls"
	filestorage "solventek-backend/lib/file-storage"
	jobhandler "solventek-backend/lib/job"
	notificationhandler "solventek-backend/lib/notification"
	notifyhandler "solventek-backend/lib/notify"
	orghandler "solventek-backend/lib/organization"
	"solventek-backend/lib/rbac"
	timelinehandler "solventek-backend/lib/timeline"
	s3client "solventek-backend/s3"
)

var LoggerConfig *fiberlog.Config

// InitAllServices — порядок важен: сторы и нотификации раньше доменных обработчиков
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	rbac.NewHandler()
	authhandler.NewHandler()
	notificationhandler.NewHandler()
	notifyhandler.NewHandler()
	timelinehandler.NewHandler()
	filestorage.NewHandler(s3client.Client)
	xlsexport.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	orghandler.NewHandler()
}
