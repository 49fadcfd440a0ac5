package merger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blackmoshui/merge-coin/internal/config"
	"github.com/blackmoshui/merge-coin/internal/metrics"
	"github.com/blackmoshui/merge-coin/internal/ratelimit"
	"github.com/blackmoshui/merge-coin/internal/sui/rpc"
)

// Signer authorizes merge transactions. Satisfied by keys.Keypair.
type Signer interface {
	Address() string
	SignTransactionBlock(txBytes string) (string, error)
}

// Merger partitions a coin type's objects into fixed-size batches and
// submits one merge transaction per batch. Unlike the listers, every
// failure here is logged AND returned to the caller.
type Merger struct {
	client rpc.RPCClient
	signer Signer
	lister *Lister
	cfg    config.MergeConfig
	logger *slog.Logger
}

func NewMerger(client rpc.RPCClient, signer Signer, lister *Lister, cfg config.MergeConfig, logger *slog.Logger) *Merger {
	return &Merger{
		client: client,
		signer: signer,
		lister: lister,
		cfg:    cfg,
		logger: logger.With("component", "merger"),
	}
}

// MergeCoinType consolidates all coin objects of one type owned by the
// signer. Batches are submitted sequentially with a fixed pause between
// successive submissions; a final remainder batch of one object is
// skipped since there is nothing to fold into it.
func (m *Merger) MergeCoinType(ctx context.Context, coinType string) error {
	owner := m.signer.Address()
	logger := m.logger.With("coin_type", coinType)

	ids, err := m.lister.ListCoinObjects(ctx, owner, coinType)
	if err != nil {
		logger.Error("list coin objects failed", "error", err)
		return fmt.Errorf("list coin objects: %w", err)
	}
	if len(ids) <= 1 {
		logger.Info("nothing to merge", "objects", len(ids))
		return nil
	}

	batches := partition(ids, m.cfg.BatchSize)
	logger.Info("merging coin objects",
		"objects", len(ids),
		"batches", len(batches),
		"batch_size", m.cfg.BatchSize,
	)

	pacer := ratelimit.NewIntervalLimiter(m.cfg.InterBatchDelay)
	for i, batch := range batches {
		if len(batch) < 2 {
			// Only possible as the final remainder.
			logger.Info("skipping single-object remainder", "batch", i)
			continue
		}

		if err := pacer.Wait(ctx); err != nil {
			return fmt.Errorf("inter-batch pause: %w", err)
		}

		if m.cfg.DryRun {
			logger.Info("dry run: would merge batch",
				"batch", i,
				"objects", len(batch),
				"primary", batch[0],
			)
			continue
		}

		digest, err := m.submitMergeBatch(ctx, coinType, batch)
		if err != nil {
			logger.Error("merge batch failed", "batch", i, "objects", len(batch), "error", err)
			return fmt.Errorf("merge batch %d: %w", i, err)
		}
		metrics.BatchesSubmittedTotal.Inc()
		logger.Info("merge batch submitted", "batch", i, "objects", len(batch), "digest", digest)
	}

	return nil
}

// submitMergeBatch folds all batch members except the first into the
// first: build on the node, sign locally, execute with effects and
// events requested.
func (m *Merger) submitMergeBatch(ctx context.Context, coinType string, batch []string) (string, error) {
	primary, sources := batch[0], batch[1:]

	txb, err := m.client.BuildMergeCoins(ctx, m.signer.Address(), coinType, primary, sources, m.cfg.GasBudget)
	if err != nil {
		return "", fmt.Errorf("build transaction: %w", err)
	}

	sig, err := m.signer.SignTransactionBlock(txb.TxBytes)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	resp, err := m.client.ExecuteTransactionBlock(ctx, txb.TxBytes, sig, rpc.ExecuteOptions{
		ShowEffects: true,
		ShowEvents:  true,
	})
	if err != nil {
		return "", fmt.Errorf("execute transaction: %w", err)
	}
	return resp.Digest, nil
}

// partition splits ids into contiguous slices of at most size
// elements, preserving order; the last slice may be smaller. size must
// be positive, which config validation guarantees.
func partition(ids []string, size int) [][]string {
	batches := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
