package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rl1809/stockledger/internal/core/domain"
	"github.com/rl1809/stockledger/internal/port"
)

type DeductionResult struct {
	Applied []int64
	Entries []domain.LedgerEntry
}

// DeductionEngine is the only writer of raw material stock. Every path debits
// with the same guarded update and writes one ledger entry per material.
type DeductionEngine struct {
	uow   port.UnitOfWork
	users port.UserDirectory
	log   *zap.Logger
	now   func() time.Time
}

func NewDeductionEngine(uow port.UnitOfWork, users port.UserDirectory, log *zap.Logger) *DeductionEngine {
	return &DeductionEngine{
		uow:   uow,
		users: users,
		log:   log,
		now:   time.Now,
	}
}

// Deduct debits all requirements in one transaction. If any material is
// missing or short, nothing is applied and the error reports every failing
// material. Deduct is not idempotent: repeating a call debits again.
func (e *DeductionEngine) Deduct(ctx context.Context, reqs []domain.RequirementLine, reason string, userID int64) (*DeductionResult, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("no requirements: %w", domain.ErrInvalidInput)
	}
	for _, r := range reqs {
		if r.MaterialID <= 0 || !domain.ValidQuantity(r.Quantity) {
			return nil, fmt.Errorf("material %d quantity %s: %w", r.MaterialID, r.Quantity, domain.ErrInvalidInput)
		}
	}
	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	var res *DeductionResult
	err := e.uow.WithinTx(ctx, func(ctx context.Context, tx port.Tx) error {
		out, err := e.apply(ctx, tx, reqs, reason, userID)
		if err != nil {
			return err
		}
		if err := out.err(); err != nil {
			return err
		}
		res = out.result
		return nil
	})
	if err != nil {
		e.log.Warn("deduction rolled back",
			zap.Int64("user_id", userID),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return nil, err
	}

	e.log.Info("stock deducted",
		zap.Int64("user_id", userID),
		zap.String("reason", reason),
		zap.Int("materials", len(res.Applied)),
	)
	return res, nil
}

func (e *DeductionEngine) checkUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return domain.ErrInvalidUser
	}
	ok, err := e.users.UserExists(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: check user %d: %w", domain.ErrStorage, userID, err)
	}
	if !ok {
		return domain.ErrInvalidUser
	}
	return nil
}

type applyOutcome struct {
	result     *DeductionResult
	shortfalls []domain.Shortfall
	missing    []int64
}

func (o applyOutcome) failed() bool {
	return len(o.shortfalls) > 0 || len(o.missing) > 0
}

func (o applyOutcome) err() error {
	if !o.failed() {
		return nil
	}
	var errs []error
	for _, id := range o.missing {
		errs = append(errs, fmt.Errorf("material %d: %w", id, domain.ErrMaterialNotFound))
	}
	if len(o.shortfalls) > 0 {
		errs = append(errs, &domain.ShortfallError{Shortfalls: o.shortfalls})
	}
	return errors.Join(errs...)
}

// apply runs the guarded debits inside tx. It keeps going after a failed
// line so the caller sees every failure; the caller must roll back when the
// outcome failed.
func (e *DeductionEngine) apply(ctx context.Context, tx port.Tx, reqs []domain.RequirementLine, reason string, userID int64) (applyOutcome, error) {
	out := applyOutcome{result: &DeductionResult{}}
	now := e.now().UTC()

	for _, req := range domain.Aggregate(reqs) {
		d, err := tx.DebitMaterial(ctx, req.MaterialID, req.Quantity)
		if err != nil {
			return applyOutcome{}, fmt.Errorf("%w: debit material %d: %w", domain.ErrStorage, req.MaterialID, err)
		}

		switch {
		case d.Material == nil:
			out.missing = append(out.missing, req.MaterialID)
			continue
		case !d.Applied:
			out.shortfalls = append(out.shortfalls, domain.Shortfall{
				MaterialID: req.MaterialID,
				Name:       d.Material.Name,
				Needed:     req.Quantity,
				Available:  d.Material.Quantity,
			})
			continue
		}

		entry := domain.LedgerEntry{
			MaterialID:    req.MaterialID,
			QuantityDelta: req.Quantity.Neg(),
			Unit:          d.Material.Unit,
			Reason:        reason,
			UserID:        userID,
			CreatedAt:     now,
		}
		if err := tx.AppendLedger(ctx, &entry); err != nil {
			return applyOutcome{}, fmt.Errorf("%w: ledger for material %d: %w", domain.ErrStorage, req.MaterialID, err)
		}
		out.result.Applied = append(out.result.Applied, req.MaterialID)
		out.result.Entries = append(out.result.Entries, entry)
	}

	return out, nil
}
