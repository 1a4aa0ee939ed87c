package services

import (
	"context"

	"orgchart/internal/contract"
	"orgchart/internal/domain"
	"orgchart/internal/utils"

	"go.uber.org/zap"
)

// lookup classifies a single-row read. A missing row becomes a
// domain.NotFoundError naming resource; store errors pass through.
func lookup[T any](res T, found bool, err error, resource string) (T, error) {
	out := contract.ClassifyLookup(res, found, err)
	switch out.Kind {
	case contract.LookupFound:
		return out.Resource, nil
	case contract.LookupNotFound:
		return res, domain.NotFoundError{Resource: resource}
	default:
		return res, out.Err
	}
}

// fail logs err at a level matching its outcome and wraps it in a Result.
func fail[T any](ctx context.Context, logger *zap.Logger, module, action string, err error) contract.Result[T] {
	r := contract.Fail[T](err)
	if logger != nil {
		fields := []zap.Field{
			zap.String("module", module),
			zap.String("action", action),
			zap.String("request_id", utils.RequestIDFrom(ctx)),
			zap.String("outcome", r.Outcome.String()),
		}
		if r.Outcome == contract.OutcomeStoreError {
			logger.Error("store failure", append(fields, zap.Error(err))...)
		} else {
			logger.Debug(r.Message, fields...)
		}
	}
	return r
}
