package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// recordActivity logs the activity write failure instead of failing the
// operation that triggered it.
func (uc *AuthUsecase) recordActivity(ctx context.Context, username string, activityType entity.ActivityType, details string) {
	if err := uc.activityRepo.Record(ctx, username, activityType, details); err != nil {
		ctxzap.Warn(ctx, "failed to record activity",
			zap.String("activity_type", string(activityType)),
			zap.Error(err),
		)
	}
}
