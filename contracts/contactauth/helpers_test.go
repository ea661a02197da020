package contactauth_test

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neofs-contactauth/rpc/contactauth"
	"github.com/stretchr/testify/require"
)

const (
	ctrPath = "."

	reservation  = 1_0000_0000
	fee          = 1000_0000
	pricePerByte = 1000

	// enough for several whitelistings.
	defaultDeposit = 10_0000_0000
)

type testEnv struct {
	e      *neotest.Executor
	ctr    *neotest.Contract
	hash   util.Uint160
	admin  neotest.Signer
	reader *neotest.ContractInvoker
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithPrice(t, pricePerByte)
}

func newTestEnvWithPrice(t *testing.T, price int64) *testEnv {
	e := newExecutor(t)
	admin := e.NewAccount(t)

	c := neotest.CompileFile(t, e.CommitteeHash, ctrPath, "config.yml")
	e.DeployContract(t, c, []any{admin.ScriptHash(), int64(reservation), int64(fee), price})

	return &testEnv{
		e:      e,
		ctr:    c,
		hash:   c.Hash,
		admin:  admin,
		reader: e.CommitteeInvoker(c.Hash),
	}
}

func (x *testEnv) as(s neotest.Signer) *neotest.ContractInvoker {
	return x.e.NewInvoker(x.hash, s)
}

func (x *testEnv) gas(t *testing.T, s neotest.Signer) *neotest.ContractInvoker {
	return x.e.NewInvoker(x.e.NativeHash(t, nativenames.Gas), s)
}

// newUser creates an account with the given storage balance.
func (x *testEnv) newUser(t *testing.T, deposit int64) neotest.Signer {
	acc := x.e.NewAccount(t)
	if deposit > 0 {
		x.deposit(t, acc, deposit)
	}

	return acc
}

func (x *testEnv) deposit(t *testing.T, from neotest.Signer, amount int64) {
	x.gas(t, from).Invoke(t, true, "transfer", from.ScriptHash(), x.hash, amount, nil)
}

func (x *testEnv) getInt(t *testing.T, method string, args ...any) int64 {
	s, err := x.reader.TestInvoke(t, method, args...)
	require.NoError(t, err)

	return s.Pop().BigInt().Int64()
}

func (x *testEnv) balance(t *testing.T, acc neotest.Signer) int64 {
	return x.getInt(t, "balanceOf", acc.ScriptHash())
}

func (x *testEnv) usage(t *testing.T) int64 {
	return x.getInt(t, "storageUsage")
}

func (x *testEnv) list(t *testing.T, owner neotest.Signer) []*contactauth.ContactauthContact {
	return x.contacts(t, "list", owner)
}

func (x *testEnv) contacts(t *testing.T, method string, owner neotest.Signer) []*contactauth.ContactauthContact {
	s, err := x.reader.TestInvoke(t, method, owner.ScriptHash())
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]*contactauth.ContactauthContact, len(arr))
	for i := range arr {
		res[i] = new(contactauth.ContactauthContact)
		require.NoError(t, res[i].FromStackItem(arr[i]))
	}

	return res
}

func (x *testEnv) request(t *testing.T, owner neotest.Signer) *contactauth.ContactauthRequest {
	s, err := x.reader.TestInvoke(t, "getRequest", owner.ScriptHash())
	require.NoError(t, err)

	var req contactauth.ContactauthRequest
	require.NoError(t, req.FromStackItem(s.Pop().Item()))

	return &req
}

func (x *testEnv) appLog(t *testing.T, h util.Uint256) *result.ApplicationLog {
	aer := x.e.GetTxExecResult(t, h)

	return &result.ApplicationLog{
		Container:  h,
		Executions: []state.Execution{aer.Execution},
	}
}

func newSecret(t *testing.T) ([]byte, []byte) {
	secret, err := contactauth.NewSecret()
	require.NoError(t, err)

	return secret, contactauth.RequestKey(secret)
}

// whitelist creates a request for the owner and returns its secret.
func (x *testEnv) whitelist(t *testing.T, owner neotest.Signer) []byte {
	secret, key := newSecret(t)
	x.as(x.admin).Invoke(t, stackitem.Null{}, "whitelist", owner.ScriptHash(), key)

	return secret
}

// bindContact passes the whole binding procedure for the contact.
func (x *testEnv) bindContact(t *testing.T, owner neotest.Signer, category int, value string, secondaryKey int) {
	secret := x.whitelist(t, owner)
	c := x.as(owner)
	c.Invoke(t, stackitem.Null{}, "claim", contactauth.RequestKey(secret), category, value, secondaryKey)
	c.Invoke(t, stackitem.Null{}, "confirm", secret)
}
