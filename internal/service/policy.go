package service

import (
	"context"
	"fmt"

	"patient-transport-backend/internal/apperror"
	"patient-transport-backend/internal/permission"
	"patient-transport-backend/internal/repository"

	"go.uber.org/zap"
)

// policy bundles what every entity service does around persistence:
// check the permission, record the audit trail and classify storage errors
type policy struct {
	checker   *permission.Checker
	auditRepo *repository.AuditRepository
	logger    *zap.Logger
}

func newPolicy(checker *permission.Checker, auditRepo *repository.AuditRepository, logger *zap.Logger) policy {
	return policy{checker: checker, auditRepo: auditRepo, logger: logger}
}

func (p policy) require(ctx context.Context, actor permission.Actor, name, denied string) error {
	return p.checker.Require(ctx, actor, name, denied)
}

// audit writes an audit entry; failures are logged, never returned
func (p policy) audit(ctx context.Context, actor permission.Actor, action, details string) {
	userID := actor.UserID
	if err := p.auditRepo.CreateAuditLog(ctx, &userID, action, details); err != nil {
		p.logger.Warn("failed to write audit log",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// storageError passes classified errors through and wraps anything else as internal
func (p policy) storageError(err error, op string) error {
	if err == nil {
		return nil
	}
	if apperror.KindOf(err) != apperror.KindInternal {
		return err
	}
	p.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
	return apperror.Internal(err, fmt.Sprintf("failed to %s", op))
}

// reference resolves a referenced record and turns not-found into a validation
// failure on the referencing field
func reference(err error, field, entity string, id uint) error {
	if err == nil {
		return nil
	}
	if apperror.Is(err, apperror.KindNotFound) {
		return apperror.Validation(field, fmt.Sprintf("%s %d is not registered", entity, id))
	}
	return err
}
