package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"solventek-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/job/{id}/transition/{name} [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/job/123-321/transition/publish"
		require.Equal(t, true, r1.MatchString(validUri))

		invalidUri := "/api/v1/job/transition/publish"
		require.Equal(t, false, r1.MatchString(invalidUri))

		path, method, err = parseSwaggerPattern("/api/v1/application/{id}/doc/{fileId} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/application/123-321/doc/qwe-ewr123-wr-12"
		require.Equal(t, true, r2.MatchString(validUri))

		invalidUri = "/api/v1/application/we-ewr123-wr-12/doc"
		require.Equal(t, false, r2.MatchString(invalidUri))
	})

	t.Run(`rule lookup`, func(t *testing.T) {
		i := &impl{
			rules:       map[HTTPMethod]*PathRule{},
			permissions: map[models.UserRole]map[models.Module][]models.Permission{},
		}
		err := i.RegisterRule(models.OrganizationModule, models.ManagePermission, AdminRoleSet, "/api/v1/org/{id}/approve [put]", nil)
		require.Nil(t, err)

		handler, found := i.GetRuleFunc("PUT", "/api/v1/org/123-321/approve")
		require.Equal(t, true, found)
		require.Equal(t, true, handler("", "user1", models.UserRoleHRAdmin, "/api/v1/org/123-321/approve"))
		require.Equal(t, false, handler("", "user2", models.UserRoleVendor, "/api/v1/org/123-321/approve"))

		_, found = i.GetRuleFunc("GET", "/api/v1/org/123-321/approve")
		require.Equal(t, false, found)
	})

	t.Run(`решение по кандидату доступно заказчику`, func(t *testing.T) {
		i := &impl{
			rules:       map[HTTPMethod]*PathRule{},
			permissions: map[models.UserRole]map[models.Module][]models.Permission{},
		}
		err := i.RegisterRule(models.ApplicationModule, models.ManagePermission, StaffRoleSet, "/api/v1/application/{id}/decision [put]", nil)
		require.Nil(t, err)

		uri := "/api/v1/application/123-321/decision"
		handler, found := i.GetRuleFunc("PUT", uri)
		require.Equal(t, true, found)
		require.Equal(t, true, handler("", "user1", models.UserRoleEmployee, uri))
		require.Equal(t, true, handler("", "user2", models.UserRoleTA, uri))
		require.Equal(t, false, handler("", "user3", models.UserRoleVendor, uri))
	})
}
