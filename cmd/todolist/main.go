package main

import (
	"context"
	"log/slog"

	"todolist/config"
	"todolist/internal/delivery"
	"todolist/internal/delivery/api"
	"todolist/internal/delivery/api/middleware"
	"todolist/internal/delivery/api/router/handler"
	"todolist/internal/infra/auth"
	logs "todolist/internal/infra/log"
	"todolist/internal/infra/persistence/gormdb"
	"todolist/internal/infra/pubsub"
	"todolist/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Module("infra", fx.Provide(
			config.New,
			logs.New,
			context.Background,
			gormdb.New,
			gormdb.NewTransactionManager,
		)),
		fx.Module("services", fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
		)),
		fx.Module("usecases", fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewTodoService,
		)),
		fx.Module("http", fx.Provide(
			middleware.NewAuthMiddleware,
			handler.NewUserHandler,
			handler.NewAuthHandler,
			handler.NewTodoHandler,
			fx.Annotate(api.NewServer, fx.ResultTags(`group:"deliveries"`)),
		)),
		fx.Invoke(serve),
	).Run()
}

type serveParams struct {
	fx.In

	Ctx        context.Context
	Logger     *slog.Logger
	Shutdowner fx.Shutdowner
	Deliveries []delivery.Delivery `group:"deliveries"`
}

// serve starts every delivery in the background. The first one that fails
// stops the whole application with a non-zero exit code.
func serve(params serveParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(params.Ctx); err != nil {
				params.Logger.Error("Delivery stopped with error", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
