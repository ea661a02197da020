package contactauth_test

import (
	"encoding/json"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neofs-contactauth/common"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
	"github.com/nspcc-dev/neofs-contactauth/rpc/contactauth"
	"github.com/stretchr/testify/require"
)

func (x *testEnv) page(t *testing.T, from, limit int) []*contactauth.ContactauthRecord {
	s, err := x.reader.TestInvoke(t, "page", from, limit)
	require.NoError(t, err)

	arr, ok := s.Pop().Item().Value().([]stackitem.Item)
	require.True(t, ok)

	res := make([]*contactauth.ContactauthRecord, len(arr))
	for i := range arr {
		res[i] = new(contactauth.ContactauthRecord)
		require.NoError(t, res[i].FromStackItem(arr[i]))
	}

	return res
}

func TestContactAuth_Page(t *testing.T) {
	x := newTestEnv(t)

	require.Empty(t, x.page(t, 0, contactconst.MaxPageLimit))

	owners := make(map[util.Uint160]int)
	for i := 0; i < 3; i++ {
		user := x.newUser(t, defaultDeposit)
		x.bindContact(t, user, contactconst.GovForum, "user"+string(rune('a'+i)), 0)
		x.bindContact(t, user, contactconst.Github, "user", i+1)
		owners[user.ScriptHash()] = 0
	}

	all := x.page(t, 0, contactconst.MaxPageLimit)
	require.Len(t, all, 3)
	for _, r := range all {
		_, ok := owners[r.Owner]
		require.True(t, ok)
		require.Len(t, r.Contacts, 2)
		owners[r.Owner]++
	}

	first := x.page(t, 0, 2)
	require.Len(t, first, 2)
	require.Equal(t, all[:2], first)

	rest := x.page(t, 2, 2)
	require.Len(t, rest, 1)
	require.Equal(t, all[2], rest[0])

	require.Empty(t, x.page(t, 3, 5))
	require.Empty(t, x.page(t, 0, 0))

	x.reader.InvokeFail(t, contactconst.ErrLimitExceeded, "page", 0, contactconst.MaxPageLimit+1)
	x.reader.InvokeFail(t, contactconst.ErrLimitExceeded, "page", -1, 1)
	x.reader.InvokeFail(t, contactconst.ErrLimitExceeded, "page", 0, -1)

	s, err := x.reader.TestInvoke(t, "accounts")
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	var n int
	for iter.Next() {
		b, err := iter.Value().TryBytes()
		require.NoError(t, err)

		u, err := util.Uint160DecodeBytesBE(b)
		require.NoError(t, err)

		_, ok := owners[u]
		require.True(t, ok)
		n++
	}
	require.Equal(t, len(owners), n)
}

func TestContactAuth_Settings(t *testing.T) {
	x := newTestEnv(t)

	s, err := x.reader.TestInvoke(t, "getSettings")
	require.NoError(t, err)

	var settings contactauth.ContactauthSettings
	require.NoError(t, settings.FromStackItem(s.Pop().Item()))
	require.Equal(t, x.admin.ScriptHash(), settings.Admin)
	require.EqualValues(t, reservation, settings.Reservation.Int64())
	require.EqualValues(t, fee, settings.Fee.Int64())
	require.EqualValues(t, pricePerByte, settings.PricePerByte.Int64())

	x.reader.Invoke(t, common.Version, "version")
}

func TestContactAuth_DefaultPrice(t *testing.T) {
	x := newTestEnvWithPrice(t, 0)

	policy := x.e.CommitteeInvoker(x.e.NativeHash(t, nativenames.Policy))
	s, err := policy.TestInvoke(t, "getStoragePrice")
	require.NoError(t, err)
	price := s.Pop().BigInt().Int64()

	s, err = x.reader.TestInvoke(t, "getSettings")
	require.NoError(t, err)

	var settings contactauth.ContactauthSettings
	require.NoError(t, settings.FromStackItem(s.Pop().Item()))
	require.Equal(t, price, settings.PricePerByte.Int64())
}

func TestContactAuth_DeployArguments(t *testing.T) {
	for _, tc := range []struct {
		name string
		args func(admin util.Uint160) any
		err  string
	}{
		{"missing", func(util.Uint160) any { return nil }, "missing deploy arguments"},
		{"short", func(a util.Uint160) any { return []any{a, 1, 0} }, "invalid deploy arguments"},
		{"admin", func(util.Uint160) any { return []any{[]byte{1, 2, 3}, 1, 0, 0} }, "invalid administrator"},
		{"zero reservation", func(a util.Uint160) any { return []any{a, 0, 0, 0} }, contactconst.ErrInvalidAmount},
		{"fee exceeds reservation", func(a util.Uint160) any { return []any{a, 1, 2, 0} }, contactconst.ErrInvalidAmount},
		{"negative fee", func(a util.Uint160) any { return []any{a, 1, -1, 0} }, contactconst.ErrInvalidAmount},
		{"negative price", func(a util.Uint160) any { return []any{a, 1, 0, -1} }, contactconst.ErrInvalidAmount},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := newExecutor(t)
			c := neotest.CompileFile(t, e.CommitteeHash, ctrPath, "config.yml")
			e.DeployContractCheckFAULT(t, c, tc.args(e.CommitteeHash), tc.err)
		})
	}
}

func TestContactAuth_Update(t *testing.T) {
	x := newTestEnv(t)

	bNEF, err := x.ctr.NEF.Bytes()
	require.NoError(t, err)

	jManifest, err := json.Marshal(x.ctr.Manifest)
	require.NoError(t, err)

	user := x.newUser(t, 0)
	x.as(user).InvokeFail(t, "only committee can update contract", "update", bNEF, jManifest, nil)
	x.reader.InvokeFail(t, common.ErrAlreadyUpdated, "update", bNEF, jManifest, nil)
}
