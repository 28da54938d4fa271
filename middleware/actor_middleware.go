package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "solventek-backend/lib/utils/auth-utils"
	"solventek-backend/models"
	apimodels "solventek-backend/models/api"
)

func SuperAdminRoleRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleSuperAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if value, ok := sub.(string); ok {
			return value
		}
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		if value, ok := name.(string); ok {
			return value
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if value, ok := role.(string); ok && value != "" {
			return models.UserRole(value)
		}
	}
	return ""
}

func GetUserOrg(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if org, exist := claims["org"]; exist {
		if value, ok := org.(string); ok {
			return value
		}
	}
	return ""
}

func GetUserOrgType(ctx *fiber.Ctx) models.OrgType {
	claims := authutils.GetClaims(ctx)
	if orgType, exist := claims["org_type"]; exist {
		if value, ok := orgType.(string); ok && value != "" {
			return models.OrgType(value)
		}
	}
	return models.OrgTypeSolventek
}

func GetUserPermissions(ctx *fiber.Ctx) []models.Permission {
	claims := authutils.GetClaims(ctx)
	raw, exist := claims["perms"]
	if !exist {
		return nil
	}
	// jwt десериализует массив как []interface{}
	values, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	result := make([]models.Permission, 0, len(values))
	for _, value := range values {
		if permission, ok := value.(string); ok {
			result = append(result, models.Permission(permission))
		}
	}
	return result
}

// GetActor — собирает субъекта проверок воркфлоу из клеймов токена
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		UserID:      GetUserID(ctx),
		Role:        GetUserRole(ctx),
		OrgName:     GetUserOrg(ctx),
		OrgType:     GetUserOrgType(ctx),
		Permissions: GetUserPermissions(ctx),
	}
}
