package services

import "github.com/formbase/forms-go/repositories"

type Services struct {
	Form   *FormService
	User   *UserService
	Export *ExportService
	Audit  *AuditService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Form:   NewFormService(repos),
		User:   NewUserService(repos),
		Export: NewExportService(repos),
		Audit:  NewAuditService(repos),
	}
}
