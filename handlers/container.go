package handlers

import "github.com/formbase/forms-go/services"

type Handlers struct {
	Form  *FormHandler
	User  *UserHandler
	Audit *AuditHandler
	WS    *WSHandler
}

func New(svcs *services.Services) *Handlers {
	return &Handlers{
		Form:  NewFormHandler(svcs.Form, svcs.Export),
		User:  NewUserHandler(svcs.User),
		Audit: NewAuditHandler(svcs.Audit),
		WS:    NewWSHandler(svcs.Form),
	}
}
