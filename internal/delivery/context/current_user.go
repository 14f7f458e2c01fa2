package context

import (
	"todolist/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the echo.Context key holding the authenticated *entity.User.
const KeyCurrentUser = "current_user"

// SetCurrentUser stores the authenticated user for downstream handlers.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(KeyCurrentUser, user)
}

// GetCurrentUser returns the authenticated user, or nil on unauthenticated routes.
func GetCurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(KeyCurrentUser).(*entity.User)

	return user
}
