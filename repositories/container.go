package repositories

type Repos struct {
	Form     FormRepo
	Response ResponseRepo
	User     UserRepo
	Audit    AuditRepo
}

func New() *Repos {
	return &Repos{
		Form:     &DBFormRepo{},
		Response: &DBResponseRepo{},
		User:     &DBUserRepo{},
		Audit:    &DBAuditRepo{},
	}
}
