package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"solventek-backend/controllers"
	"solventek-backend/lib/rbac"
	"solventek-backend/middleware"
	"solventek-backend/models"
	apimodels "solventek-backend/models/api"
)

type profileApiController struct {
	controllers.BaseAPIController
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Get("user_profile", controller.get)
}

type profileView struct {
	UserID      string                                `json:"user_id"`
	Name        string                                `json:"name"`
	Role        models.UserRole                       `json:"role"`
	RoleHuman   string                                `json:"role_human"`
	OrgName     string                                `json:"org_name"`
	OrgType     models.OrgType                        `json:"org_type"`
	Permissions []models.Permission                   `json:"permissions"`
	Modules     map[models.Module][]models.Permission `json:"modules"`
}

// @Summary Профиль
// @Tags Профиль
// @Description Данные текущего пользователя и его права
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=profileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/user_profile [get]
func (c *profileApiController) get(ctx *fiber.Ctx) error {
	actor := middleware.GetActor(ctx)
	item := profileView{
		UserID:      actor.UserID,
		Name:        middleware.GetUserName(ctx),
		Role:        actor.Role,
		RoleHuman:   actor.Role.ToHuman(),
		OrgName:     actor.OrgName,
		OrgType:     actor.OrgType,
		Permissions: actor.Permissions,
		Modules:     rbac.Instance.GetPermissions(actor.Role),
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}
