package routes

import (
	"github.com/formbase/forms-go/handlers"
	"github.com/formbase/forms-go/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)

	// Respondent-facing routes are public: anyone holding the link may read
	// the form and submit answers.
	r.GET("/forms/:id", h.Form.GetForm)
	r.POST("/forms/:id/responses", h.Form.SubmitResponse)

	// The token travels as a query parameter here; ownership is checked
	// inside the handler before the upgrade.
	r.GET("/ws/forms/:id", h.WS.WatchResponses)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/me", h.User.Me)

		forms := auth.Group("/forms")
		{
			forms.POST("", h.Form.CreateForm)
			forms.GET("", h.Form.GetMyForms)
			forms.PUT(":id", h.Form.UpdateForm)
			forms.DELETE(":id", h.Form.DeleteForm)
			forms.GET(":id/responses", h.Form.GetResponses)
			forms.GET(":id/responses/export", h.Form.ExportResponses)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", h.Audit.GetAuditLogs)
		}
	}
}
