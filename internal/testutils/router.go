package testutils

import (
	"github.com/formbase/forms-go/handlers"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/routes"
	"github.com/formbase/forms-go/services"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	repos := repositories.New()
	svcs := services.New(repos)
	routes.RegisterRoutes(r, handlers.New(svcs))
	return r
}
