package merger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/blackmoshui/merge-coin/internal/metrics"
)

type balanceLister interface {
	ListBalances(ctx context.Context, owner string) ([]string, error)
}

type coinTypeMerger interface {
	MergeCoinType(ctx context.Context, coinType string) error
}

// Driver sequences a full merge run: discover held coin types, then
// merge each one in enumeration order. A failure for one coin type
// does not abort the remaining iterations; the errors are collected so
// the process still exits non-zero.
type Driver struct {
	lister balanceLister
	merger coinTypeMerger
	owner  string
	logger *slog.Logger
}

func NewDriver(lister balanceLister, merger coinTypeMerger, owner string, logger *slog.Logger) *Driver {
	return &Driver{
		lister: lister,
		merger: merger,
		owner:  owner,
		logger: logger.With("component", "driver"),
	}
}

func (d *Driver) Run(ctx context.Context) error {
	coinTypes, err := d.lister.ListBalances(ctx, d.owner)
	if err != nil {
		return fmt.Errorf("list balances: %w", err)
	}
	if len(coinTypes) == 0 {
		d.logger.Info("no coin balances found, nothing to merge", "owner", d.owner)
		return nil
	}

	d.logger.Info("coin types discovered", "owner", d.owner, "count", len(coinTypes))

	var errs []error
	for _, coinType := range coinTypes {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if err := d.merger.MergeCoinType(ctx, coinType); err != nil {
			metrics.MergeFailuresTotal.Inc()
			d.logger.Error("merge failed, continuing with remaining coin types",
				"coin_type", coinType,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("merge %s: %w", coinType, err))
		}
	}

	return errors.Join(errs...)
}
