// Package merger consolidates an account's fragmented coin objects
// into fewer, larger objects, one merge transaction per batch.
package merger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blackmoshui/merge-coin/internal/metrics"
	"github.com/blackmoshui/merge-coin/internal/sui/rpc"
)

// ListerOptions bound a listing run. Propagate controls the error
// policy: when false (the historical default) a failed remote call is
// logged and reported as an empty result, indistinguishable from
// confirmed zero holdings.
type ListerOptions struct {
	PageLimit int
	ObjectCap int
	Propagate bool
}

// Lister enumerates coin types and coin objects owned by an address.
type Lister struct {
	client rpc.RPCClient
	opts   ListerOptions
	logger *slog.Logger
}

func NewLister(client rpc.RPCClient, opts ListerOptions, logger *slog.Logger) *Lister {
	return &Lister{
		client: client,
		opts:   opts,
		logger: logger.With("component", "lister"),
	}
}

// ListBalances returns the distinct coin types held by the owner. An
// empty result means "nothing to do", not "confirmed zero holdings":
// in suppress mode remote failures also come back empty.
func (l *Lister) ListBalances(ctx context.Context, owner string) ([]string, error) {
	balances, err := l.client.GetAllBalances(ctx, owner)
	if err != nil {
		if l.opts.Propagate {
			return nil, fmt.Errorf("get all balances: %w", err)
		}
		l.logger.Error("list balances failed, treating as empty", "owner", owner, "error", err)
		return nil, nil
	}

	coinTypes := make([]string, 0, len(balances))
	for _, b := range balances {
		coinTypes = append(coinTypes, b.CoinType)
	}
	return coinTypes, nil
}

// ListCoinObjects returns the owner's coin object IDs of the given
// type in server-supplied order, following the pagination cursor until
// the server reports no further page or the object cap is reached.
// The cap is a resource bound, not an error: enumeration stops
// immediately and the result is truncated to exactly the cap.
func (l *Lister) ListCoinObjects(ctx context.Context, owner, coinType string) ([]string, error) {
	var ids []string
	var cursor *string

	for {
		page, err := l.client.GetCoins(ctx, owner, coinType, cursor, l.opts.PageLimit)
		if err != nil {
			if l.opts.Propagate {
				return nil, fmt.Errorf("get coins page: %w", err)
			}
			// Partial results gathered before the failure are discarded.
			l.logger.Error("list coin objects failed, treating as empty",
				"owner", owner,
				"coin_type", coinType,
				"fetched_before_failure", len(ids),
				"error", err,
			)
			return nil, nil
		}

		for _, c := range page.Data {
			ids = append(ids, c.CoinObjectID)
		}
		metrics.ObjectsFetchedTotal.Add(float64(len(page.Data)))

		if len(ids) >= l.opts.ObjectCap {
			l.logger.Warn("object cap reached, stopping enumeration early",
				"coin_type", coinType,
				"cap", l.opts.ObjectCap,
				"fetched", len(ids),
			)
			ids = ids[:l.opts.ObjectCap]
			break
		}
		if !page.HasNextPage {
			break
		}
		cursor = page.NextCursor
	}

	return ids, nil
}
