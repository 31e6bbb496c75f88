package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/devlink-app/devlink-backend/internal/data/repos/users"
	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/ctxutil"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo users.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo users.UserRepo) UserService {
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("%w: no session", errs.ErrUnauthorized)
	}
	u, err := us.userRepo.GetByID(dbctx.New(ctx), rd.UserID)
	if err != nil {
		return nil, asNotFound(err, "load user")
	}
	return u, nil
}
