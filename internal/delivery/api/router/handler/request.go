package handler

import (
	"todolist/internal/delivery/api/validator"
	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and checks its validate tags.
// Both failures become ErrValidationFailed with the reason in the details.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(bindingReason(err))
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

func bindingReason(err error) string {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return bindErr.Field + ": invalid value"
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "malformed request body"
}

// pathID reads the numeric :id path parameter.
func pathID(c echo.Context) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).MustUint("id", &id).BindError(); err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id: must be a positive integer")
	}

	return id, nil
}

// queryPage reads limit and offset, defaulting to the first page.
// Range checks are left to entity.Page.Validate.
func queryPage(c echo.Context) (entity.Page, error) {
	page := entity.DefaultPage()
	err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError()
	if err != nil {
		return entity.Page{}, domainerrors.ErrValidationFailed.WithDetails(bindingReason(err))
	}

	return page, nil
}

// optionalQuery returns a pointer to the named query parameter, or nil when absent.
func optionalQuery(c echo.Context, name string) *string {
	values := c.QueryParams()
	if !values.Has(name) {
		return nil
	}
	value := values.Get(name)

	return &value
}

// nonEmptyQuery is optionalQuery with an empty value treated as absent.
func nonEmptyQuery(c echo.Context, name string) *string {
	if value := c.QueryParam(name); value != "" {
		return &value
	}

	return nil
}

// currentUser returns the user stored by AuthMiddleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user := deliverycontext.GetCurrentUser(c)
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrCredentialsInvalid, "no authenticated user")
	}

	return user, nil
}
