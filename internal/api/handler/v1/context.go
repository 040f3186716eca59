package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/events-api/internal/api/handler/v1/response"
	"github.com/gatherly/events-api/internal/api/middleware"
	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	val, exists := ctx.Get(middleware.CtxKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("missing user in context"))
	}

	userID, ok := val.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("malformed user in context"))
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(err)
		}

		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err))
	}

	return user, nil
}

func requireOrganizer(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	user, respErr := getUserFromContext(ctx, uSvc)
	if respErr != nil {
		return domain.User{}, respErr
	}

	if user.Role != domain.RoleOrganizer {
		return domain.User{}, response.ErrPermissionDenied(fmt.Errorf("user %v is not an organizer", user.ID))
	}

	return user, nil
}
