package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
	"github.com/nspcc-dev/neofs-contactauth/rpc/contactauth"
	"go.uber.org/zap"
)

const (
	defaultPageSize = contactconst.MaxPageLimit
	maxPageSize     = contactconst.MaxPageLimit
)

// Record is a directory entry in the export format.
type Record struct {
	Owner    string    `json:"owner"`
	Contacts []Contact `json:"contacts"`
}

// Contact is a bound contact in the export format.
type Contact struct {
	Category     string `json:"category"`
	Value        string `json:"value"`
	SecondaryKey int64  `json:"secondaryKey,omitempty"`
}

// Sink stores exported records.
type Sink interface {
	Put(ctx context.Context, r Record) error
	Close() error
}

// pager reads the contract directory page by page.
type pager interface {
	Page(from, limit *big.Int) ([]*contactauth.ContactauthRecord, error)
}

func toRecord(r *contactauth.ContactauthRecord) Record {
	res := Record{
		Owner:    address.Uint160ToString(r.Owner),
		Contacts: make([]Contact, len(r.Contacts)),
	}

	for i, c := range r.Contacts {
		res.Contacts[i] = Contact{
			Category:     contactauth.CategoryName(int(c.Category.Int64())),
			Value:        c.Value,
			SecondaryKey: c.SecondaryKey.Int64(),
		}
	}

	return res
}

// export reads the whole directory and passes records to the sinks. It
// returns the number of exported records.
func export(ctx context.Context, p pager, pageSize int, log *zap.Logger, sinks ...Sink) (int, error) {
	var n int

	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		records, err := p.Page(big.NewInt(int64(n)), big.NewInt(int64(pageSize)))
		if err != nil {
			return n, fmt.Errorf("read page from %d: %w", n, err)
		}

		log.Debug("directory page read", zap.Int("from", n), zap.Int("records", len(records)))

		for i := range records {
			r := toRecord(records[i])
			for _, s := range sinks {
				if err = s.Put(ctx, r); err != nil {
					return n, fmt.Errorf("put record of %s: %w", r.Owner, err)
				}
			}
			n++
		}

		if len(records) < pageSize {
			return n, nil
		}
	}
}

// pruner drops exported data missing from the latest export.
type pruner interface {
	prune(ctx context.Context) (int64, error)
}

// exportAll exports the directory and prunes stale data. Nothing is pruned
// unless every record is exported.
func exportAll(ctx context.Context, p pager, pageSize int, log *zap.Logger, pr pruner, sinks ...Sink) (int, error) {
	n, err := export(ctx, p, pageSize, log, sinks...)
	if err != nil || pr == nil {
		return n, err
	}

	pruned, err := pr.prune(ctx)
	if err != nil {
		return n, err
	}

	log.Debug("stale contacts pruned", zap.Int64("rows", pruned))

	return n, nil
}
