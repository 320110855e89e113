package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authorizeContext(t *testing.T, role models.UserRole) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Set(CurrentUserKey, models.User{ID: 1, Role: role})
	return c, w
}

func TestAuthorizeAllowsListedRole(t *testing.T) {
	c, w := authorizeContext(t, models.RoleAdmin)

	Authorize(models.RoleAdmin)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorizeRejectsSellerOnAdminRoute(t *testing.T) {
	c, w := authorizeContext(t, models.RoleSeller)

	Authorize(models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorizeRejectsBuyerOnSellerRoute(t *testing.T) {
	c, w := authorizeContext(t, models.RoleBuyer)

	Authorize(models.RoleSeller, models.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}
