package contactauth

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
	"github.com/stretchr/testify/require"
)

type testInvoker struct {
	method string
	params []any
	res    stackitem.Item
	fault  string
}

func (x *testInvoker) Call(_ util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	x.method, x.params = operation, params
	if x.fault != "" {
		return &result.Invoke{State: "FAULT", FaultException: x.fault}, nil
	}
	return &result.Invoke{State: "HALT", Stack: []stackitem.Item{x.res}}, nil
}

func (x *testInvoker) CallAndExpandIterator(util.Uint160, string, int, ...any) (*result.Invoke, error) {
	return nil, errors.New("not implemented")
}

func (x *testInvoker) TerminateSession(uuid.UUID) error {
	return errors.New("not implemented")
}

func (x *testInvoker) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, errors.New("not implemented")
}

type testTransferer struct {
	from, to util.Uint160
	amount   *big.Int
	data     any
}

func (x *testTransferer) Transfer(from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error) {
	x.from, x.to, x.amount, x.data = from, to, amount, data
	return util.Uint256{1}, 10, nil
}

func contactItem(category int, value string, secondary int) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(category),
		stackitem.Make(value),
		stackitem.Make(secondary),
	})
}

func TestContactauthRequest_FromStackItem(t *testing.T) {
	owner := util.Uint160{1, 2, 3}
	key := make([]byte, contactconst.RequestKeyLength)

	var req ContactauthRequest
	require.NoError(t, req.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(key),
		stackitem.Make(owner.BytesBE()),
		stackitem.Make(true),
		contactItem(contactconst.Telegram, "handle", 42),
	})))

	require.Equal(t, key, req.Key)
	require.Equal(t, owner, req.Owner)
	require.True(t, req.Claimed)
	require.EqualValues(t, contactconst.Telegram, req.Contact.Category.Int64())
	require.Equal(t, "handle", req.Contact.Value)
	require.EqualValues(t, 42, req.Contact.SecondaryKey.Int64())

	require.Error(t, req.FromStackItem(stackitem.Make(1)))
	require.Error(t, req.FromStackItem(stackitem.NewStruct([]stackitem.Item{stackitem.Make(key)})))
}

func TestContactauthContact_InvalidUTF8(t *testing.T) {
	var c ContactauthContact
	require.Error(t, c.FromStackItem(stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(0),
		stackitem.Make([]byte{0xff, 0xfe}),
		stackitem.Make(0),
	})))
}

func TestContractReader_Page(t *testing.T) {
	owner := util.Uint160{9}
	inv := &testInvoker{res: stackitem.NewArray([]stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{
			stackitem.Make(owner.BytesBE()),
			stackitem.NewArray([]stackitem.Item{
				contactItem(contactconst.Email, "a@b.c", 0),
				contactItem(contactconst.Github, "octocat", 583231),
			}),
		}),
	})}

	records, err := NewReader(inv, util.Uint160{}).Page(big.NewInt(0), big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, "page", inv.method)
	require.Len(t, records, 1)
	require.Equal(t, owner, records[0].Owner)
	require.Len(t, records[0].Contacts, 2)
	require.Equal(t, "octocat", records[0].Contacts[1].Value)
}

func TestContractReader_LookupOwner(t *testing.T) {
	inv := &testInvoker{res: stackitem.Null{}}
	r := NewReader(inv, util.Uint160{})

	_, ok, err := r.LookupOwner(big.NewInt(contactconst.Email), "a@b.c", big.NewInt(0))
	require.NoError(t, err)
	require.False(t, ok)

	key, err := r.FindByOwner(util.Uint160{1})
	require.NoError(t, err)
	require.Nil(t, key)

	owner := util.Uint160{4, 2}
	inv.res = stackitem.Make(owner.BytesBE())

	res, ok, err := r.LookupOwner(big.NewInt(contactconst.Email), "a@b.c", big.NewInt(0))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, owner, res)
}

type testActor struct {
	testInvoker

	script []byte
}

func (x *testActor) MakeCall(util.Uint160, string, ...any) (*transaction.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (x *testActor) MakeRun(script []byte) (*transaction.Transaction, error) {
	x.script = script
	return transaction.New(script, 0), nil
}

func (x *testActor) MakeUnsignedCall(util.Uint160, string, []transaction.Attribute, ...any) (*transaction.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (x *testActor) MakeUnsignedRun(script []byte, _ []transaction.Attribute) (*transaction.Transaction, error) {
	x.script = script
	return transaction.New(script, 0), nil
}

func (x *testActor) SendCall(util.Uint160, string, ...any) (util.Uint256, uint32, error) {
	return util.Uint256{}, 0, errors.New("not implemented")
}

func (x *testActor) SendRun(script []byte) (util.Uint256, uint32, error) {
	x.script = script
	return util.Uint256{1}, 10, nil
}

func TestContract_SendToContact(t *testing.T) {
	var (
		contract = util.Uint160{1}
		token    = util.Uint160{2}
		from     = util.Uint160{3}
		act      = new(testActor)
		c        = New(act, contract)
	)

	script, err := SendToContactScript(contract, token, from, big.NewInt(contactconst.Twitter), "bob", big.NewInt(0), big.NewInt(100))
	require.NoError(t, err)

	_, _, err = c.SendToContact(token, from, big.NewInt(contactconst.Twitter), "bob", big.NewInt(0), big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, script, act.script)
	// no separate route invocation
	require.Empty(t, act.method)

	tx, err := c.SendToContactUnsigned(token, from, big.NewInt(contactconst.Twitter), "bob", big.NewInt(0), big.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, script, tx.Script)

	other, err := SendToContactScript(contract, token, from, big.NewInt(contactconst.Twitter), "alice", big.NewInt(0), big.NewInt(100))
	require.NoError(t, err)
	require.NotEqual(t, script, other)
}

func TestContract_Deposit(t *testing.T) {
	var (
		contract = util.Uint160{1}
		from     = util.Uint160{2}
		gas      = new(testTransferer)
		c        = &Contract{hash: contract}
	)

	_, _, err := c.Deposit(gas, from, big.NewInt(5), util.Uint160{})
	require.NoError(t, err)
	require.Equal(t, contract, gas.to)
	require.Nil(t, gas.data)

	rcv := util.Uint160{3}
	_, _, err = c.Deposit(gas, from, big.NewInt(5), rcv)
	require.NoError(t, err)
	require.Equal(t, rcv, gas.data)
}

func TestEventsFromApplicationLog(t *testing.T) {
	owner := util.Uint160{5}
	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "Bind", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(owner.BytesBE()),
					stackitem.Make(contactconst.Email),
					stackitem.Make("a@b.c"),
				})},
				{Name: "Deposit", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.Make(owner.BytesBE()),
					stackitem.Make(10),
				})},
			},
		}},
	}

	binds, err := BindEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, binds, 1)
	require.Equal(t, owner, binds[0].Owner)
	require.Equal(t, "a@b.c", binds[0].Value)

	deposits, err := DepositEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	require.EqualValues(t, 10, deposits[0].Amount.Int64())

	unbinds, err := UnbindEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, unbinds)

	_, err = ClaimEventsFromApplicationLog(nil)
	require.Error(t, err)
}
