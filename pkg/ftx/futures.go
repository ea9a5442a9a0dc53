package ftx

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/tradekit/ftx/pkg/ftxapi"
)

// ErrNoFuture is returned when no enabled, non-expired future matches the
// requested underlying.
var ErrNoFuture = errors.New("ftx: no tradeable future found")

// tradeable keeps only dated futures that can currently be traded, dropping
// perpetuals, MOVE contracts, expired and disabled entries.
func tradeable(future ftxapi.Future) bool {
	return future.Type == ftxapi.FutureTypeFuture && future.Enabled && !future.Expired
}

// Futures returns all enabled, non-expired dated futures.
func (c *Client) Futures(ctx context.Context) ([]ftxapi.Future, error) {
	futures, err := c.api.NewGetFuturesRequest().Do(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []ftxapi.Future
	for _, future := range futures {
		if tradeable(future) {
			filtered = append(filtered, future)
		}
	}

	return filtered, nil
}

// FuturesByUnderlying returns all enabled, non-expired dated futures tracking
// the given underlying asset, e.g. "BTC".
func (c *Client) FuturesByUnderlying(ctx context.Context, underlying string) ([]ftxapi.Future, error) {
	futures, err := c.Futures(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []ftxapi.Future
	for _, future := range futures {
		if future.Underlying == underlying {
			filtered = append(filtered, future)
		}
	}

	return filtered, nil
}

// NextFuture returns the soonest-expiring tradeable future for the given
// underlying. It returns ErrNoFuture when the filtered set is empty.
func (c *Client) NextFuture(ctx context.Context, underlying string) (*ftxapi.Future, error) {
	futures, err := c.FuturesByUnderlying(ctx, underlying)
	if err != nil {
		return nil, err
	}

	if len(futures) == 0 {
		return nil, errors.Wrapf(ErrNoFuture, "underlying %s", underlying)
	}

	sort.Slice(futures, func(i, j int) bool {
		ei, ej := futures[i].Expiry, futures[j].Expiry
		if ei == nil {
			return false
		}
		if ej == nil {
			return true
		}
		return ei.Before(*ej)
	})

	return &futures[0], nil
}

// NextFutureName returns the name of the soonest-expiring tradeable future
// for the given underlying.
func (c *Client) NextFutureName(ctx context.Context, underlying string) (string, error) {
	future, err := c.NextFuture(ctx, underlying)
	if err != nil {
		return "", err
	}

	return future.Name, nil
}
