package auth

import (
	"context"

	"freight/internal/entities"
)

type actorKey struct{}

func WithActor(ctx context.Context, actor *entities.User) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext достает пользователя, которого положил Middleware.
func ActorFromContext(ctx context.Context) (*entities.User, bool) {
	actor, ok := ctx.Value(actorKey{}).(*entities.User)
	return actor, ok && actor != nil
}
