package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"solventek-backend/controllers"
	notificationhandler "solventek-backend/lib/notification"
	"solventek-backend/middleware"
	"solventek-backend/models"
	apimodels "solventek-backend/models/api"
	notificationapimodels "solventek-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("unread", controller.unread)
		router.Put("mark_read", controller.markRead)
	})
}

// @Summary Непрочитанное
// @Tags Уведомления
// @Description Ид сущностей с непрочитанными событиями по всем категориям
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.UnreadView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/notification/unread [get]
func (c *notificationApiController) unread(ctx *fiber.Ctx) error {
	userID := middleware.GetUserID(ctx)
	result := make([]notificationapimodels.UnreadView, 0, len(models.NotificationCategories))
	// сбой одной категории не должен ронять опрос целиком
	for _, category := range models.NotificationCategories {
		result = append(result, notificationapimodels.UnreadView{
			Category: category,
			Ids:      notificationhandler.Instance.GetUnreadIds(userID, category),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отметить прочитанным
// @Tags Уведомления
// @Description Прочтение событий категории, пустой список ид = все
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 notificationapimodels.MarkReadRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/mark_read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	var payload notificationapimodels.MarkReadRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err := notificationhandler.Instance.MarkRead(userID, payload.Category, payload.Ids)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка прочтения событий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
