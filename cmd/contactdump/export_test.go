package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
	"github.com/nspcc-dev/neofs-contactauth/rpc/contactauth"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testPager struct {
	records []*contactauth.ContactauthRecord
	calls   int
	err     error
}

func (x *testPager) Page(from, limit *big.Int) ([]*contactauth.ContactauthRecord, error) {
	x.calls++
	if x.err != nil {
		return nil, x.err
	}

	f, l := int(from.Int64()), int(limit.Int64())
	if f >= len(x.records) {
		return []*contactauth.ContactauthRecord{}, nil
	}

	end := f + l
	if end > len(x.records) {
		end = len(x.records)
	}

	return x.records[f:end], nil
}

type memSink struct {
	records []Record
	closed  bool
}

func (x *memSink) Put(_ context.Context, r Record) error {
	x.records = append(x.records, r)
	return nil
}

func (x *memSink) Close() error {
	x.closed = true
	return nil
}

func testRecords(n int) []*contactauth.ContactauthRecord {
	res := make([]*contactauth.ContactauthRecord, n)
	for i := range res {
		res[i] = &contactauth.ContactauthRecord{
			Owner: util.Uint160{byte(i + 1)},
			Contacts: []*contactauth.ContactauthContact{{
				Category:     big.NewInt(contactconst.Github),
				Value:        "user",
				SecondaryKey: big.NewInt(int64(i + 1)),
			}},
		}
	}

	return res
}

func TestExport(t *testing.T) {
	for _, tc := range []struct {
		records, pageSize, calls int
	}{
		{0, 10, 1},
		{5, 10, 1},
		{10, 10, 2},
		{25, 10, 3},
		{3, 1, 4},
	} {
		p := &testPager{records: testRecords(tc.records)}
		s := new(memSink)

		n, err := export(context.Background(), p, tc.pageSize, zaptest.NewLogger(t), s)
		require.NoError(t, err)
		require.Equal(t, tc.records, n)
		require.Equal(t, tc.calls, p.calls)
		require.Len(t, s.records, tc.records)

		for i := range s.records {
			require.Equal(t, address.Uint160ToString(util.Uint160{byte(i + 1)}), s.records[i].Owner)
			require.Equal(t, "github", s.records[i].Contacts[0].Category)
			require.EqualValues(t, i+1, s.records[i].Contacts[0].SecondaryKey)
		}
	}
}

func TestExportErrors(t *testing.T) {
	pageErr := errors.New("page failed")

	_, err := export(context.Background(), &testPager{err: pageErr}, 10, zaptest.NewLogger(t))
	require.ErrorIs(t, err, pageErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = export(ctx, &testPager{records: testRecords(1)}, 10, zaptest.NewLogger(t))
	require.ErrorIs(t, err, context.Canceled)
}

type testPruner struct {
	calls int
	err   error
}

func (x *testPruner) prune(context.Context) (int64, error) {
	x.calls++
	return 1, x.err
}

func TestExportAll(t *testing.T) {
	pr := new(testPruner)

	n, err := exportAll(context.Background(), &testPager{records: testRecords(3)}, 2, zaptest.NewLogger(t), pr, new(memSink))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 1, pr.calls)

	t.Run("interrupted export", func(t *testing.T) {
		pr := new(testPruner)
		pageErr := errors.New("page failed")

		_, err := exportAll(context.Background(), &testPager{err: pageErr}, 2, zaptest.NewLogger(t), pr, new(memSink))
		require.ErrorIs(t, err, pageErr)
		require.Zero(t, pr.calls)
	})

	t.Run("prune error", func(t *testing.T) {
		pr := &testPruner{err: errors.New("prune failed")}

		_, err := exportAll(context.Background(), &testPager{records: testRecords(1)}, 2, zaptest.NewLogger(t), pr)
		require.ErrorIs(t, err, pr.err)
	})

	t.Run("no pruner", func(t *testing.T) {
		n, err := exportAll(context.Background(), &testPager{records: testRecords(1)}, 2, zaptest.NewLogger(t), nil)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
}

func TestJSONSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.jsonl")

	s, err := newJSONSink(path)
	require.NoError(t, err)

	n, err := export(context.Background(), &testPager{records: testRecords(3)}, 2, zaptest.NewLogger(t), s)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.NoError(t, s.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	var (
		res     []Record
		scanner = bufio.NewScanner(f)
	)
	for scanner.Scan() {
		var r Record
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &r))
		res = append(res, r)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, res, 3)
	require.Equal(t, "user", res[2].Contacts[0].Value)
	require.EqualValues(t, 3, res[2].Contacts[0].SecondaryKey)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
rpc: http://localhost:30333
contract: NhJX9eCbkKtWo2ehnDQL8fSngCuqvtuGb2
page_size: 50
timeout: 5s
`), 0600))

	cfg, err := loadConfig([]string{"--config", path, "--out", "dump.jsonl", "--page_size", "20"})
	require.NoError(t, err)
	require.Equal(t, "http://localhost:30333", cfg.RPC)
	require.Equal(t, "dump.jsonl", cfg.Out)
	require.Equal(t, 20, cfg.PageSize)
	require.Equal(t, "5s", cfg.Timeout.String())

	_, err = loadConfig([]string{"--config", path})
	require.ErrorContains(t, err, "missing output")

	t.Setenv("CONTACTDUMP_OUT", "env.jsonl")
	cfg, err = loadConfig([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, "env.jsonl", cfg.Out)
	require.Equal(t, 50, cfg.PageSize)

	_, err = loadConfig([]string{"--rpc", "http://localhost:30333", "--contract", "x", "--out", "o", "--page_size", "101"})
	require.ErrorContains(t, err, "page size")
}

func TestParseContract(t *testing.T) {
	u := util.Uint160{1, 2, 3}

	res, err := parseContract(u.StringLE())
	require.NoError(t, err)
	require.Equal(t, u, res)

	res, err = parseContract(address.Uint160ToString(u))
	require.NoError(t, err)
	require.Equal(t, u, res)

	_, err = parseContract("not a contract")
	require.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	require.Zero(t, runCommand([]string{"--help"}))
	require.Equal(t, 1, runCommand([]string{"--out", "dump.jsonl"}))

	// failed export returns instead of exiting the process
	out := filepath.Join(t.TempDir(), "dump.jsonl")
	require.Equal(t, 1, runCommand([]string{
		"--rpc", "http://127.0.0.1:1",
		"--contract", util.Uint160{1}.StringLE(),
		"--out", out,
		"--timeout", "1s",
	}))
	require.NoFileExists(t, out)
}
