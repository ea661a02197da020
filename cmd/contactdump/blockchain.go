package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neofs-contactauth/rpc/contactauth"
)

// wrapper over rpcNeo providing ContactAuth contract services needed for
// current command.
type remoteBlockchain struct {
	rpc      *rpcclient.Client
	contract *contactauth.ContractReader

	// height of the state snapshot the contract is read at.
	currentBlock uint32
}

// newRemoteBlockChain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. The contract is read at the state of the penult
// block so that paged reads see the same directory. All requests are done
// within the given timeout.
func newRemoteBlockChain(ctx context.Context, endpoint string, contract util.Uint160, timeout time.Duration) (*remoteBlockchain, error) {
	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    timeout,
		RequestTimeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	nLatestBlock, err := c.GetBlockCount()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get number of the latest block: %w", err)
	}

	if _, err = c.GetContractStateByHash(contract); err != nil {
		c.Close()
		return nil, fmt.Errorf("get state of the contract '%s': %w", contract.StringLE(), err)
	}

	stateRoot, err := c.GetStateRootByHeight(nLatestBlock - 1)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("get state root at penult block #%d: %w", nLatestBlock-1, err)
	}

	return &remoteBlockchain{
		rpc:          c,
		contract:     contactauth.NewReader(invoker.NewHistoricWithState(stateRoot.Root, c, nil), contract),
		currentBlock: nLatestBlock - 1,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// parseContract accepts both contract hash in LE and Neo address forms.
func parseContract(s string) (util.Uint160, error) {
	if u, err := util.Uint160DecodeStringLE(s); err == nil {
		return u, nil
	}

	u, err := address.StringToUint160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract '%s': neither LE hash nor address", s)
	}

	return u, nil
}
