package contactauth

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/callflag"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/emit"
	"github.com/nspcc-dev/neo-go/pkg/vm/opcode"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
)

// ErrInvalidContact is returned by Normalize for contacts the contract
// rejects.
var ErrInvalidContact = errors.New(contactconst.ErrInvalidContact)

// whitespace is the set of blank characters trimmed from contact values.
const whitespace = " \t\n\v\f\r\u00a0"

var categoryNames = []string{
	contactconst.Email:    "email",
	contactconst.Telegram: "telegram",
	contactconst.Twitter:  "twitter",
	contactconst.Github:   "github",
	contactconst.GovForum: "govforum",
}

// CategoryName returns human-readable name of the contact category.
func CategoryName(category int) string {
	if category < 0 || category >= len(categoryNames) {
		return fmt.Sprintf("unknown(%d)", category)
	}

	return categoryNames[category]
}

// ParseCategory resolves category by its name as returned by CategoryName.
func ParseCategory(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range categoryNames {
		if categoryNames[i] == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("unknown contact category '%s'", name)
}

// UsesSecondaryKey checks whether contacts of the category are identified by
// the secondary key rather than by the value.
func UsesSecondaryKey(category int) bool {
	return category == contactconst.Telegram || category == contactconst.Github
}

// Normalize returns canonical form of the contact the contract stores. It
// allows to check contact validity and predict lookups without contract
// invocation.
func Normalize(category int, value string, secondaryKey int) (*ContactauthContact, error) {
	if category < 0 || category >= contactconst.CategoryCount {
		return nil, fmt.Errorf("%w: unknown category %d", ErrInvalidContact, category)
	}

	leading := whitespace
	if category != contactconst.Email {
		leading += "@"
	}

	value = asciiLower(strings.TrimRight(strings.TrimLeft(value, leading), whitespace))
	if value == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidContact)
	}

	if !UsesSecondaryKey(category) {
		secondaryKey = 0
	} else if secondaryKey <= 0 {
		return nil, fmt.Errorf("%w: missing secondary key", ErrInvalidContact)
	}

	return &ContactauthContact{
		Category:     big.NewInt(int64(category)),
		Value:        value,
		SecondaryKey: big.NewInt(int64(secondaryKey)),
	}, nil
}

// asciiLower lower-cases ASCII letters only, other bytes are kept as is.
func asciiLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}

	return string(b)
}

// Transferer transfers NEP-17 tokens, it's usually nep17.TokenWriter of the
// GAS contract.
type Transferer interface {
	Transfer(from util.Uint160, to util.Uint160, amount *big.Int, data any) (util.Uint256, uint32, error)
}

// SendToContactScript returns a script resolving the contact with the route
// method of the contract and transferring amount of the NEP-17 token from the
// sender to the resolved account. Both happen in the same invocation, the
// script FAULTs if the contact is not bound or the transfer fails.
func SendToContactScript(contract util.Uint160, token util.Uint160, from util.Uint160, category *big.Int, value string, secondaryKey *big.Int, amount *big.Int) ([]byte, error) {
	w := io.NewBufBinWriter()

	// transfer(from, to, amount, data) arguments in reverse order, `to` is
	// the result of route.
	emit.Opcodes(w.BinWriter, opcode.PUSHNULL)
	emit.BigInt(w.BinWriter, amount)
	emit.AppCall(w.BinWriter, contract, "route", callflag.ReadStates, category, value, secondaryKey)
	emit.Bytes(w.BinWriter, from.BytesBE())
	emit.Int(w.BinWriter, 4)
	emit.Opcodes(w.BinWriter, opcode.PACK)
	emit.AppCallNoArgs(w.BinWriter, token, "transfer", callflag.All)
	emit.Opcodes(w.BinWriter, opcode.ASSERT)

	if w.Err != nil {
		return nil, fmt.Errorf("build script: %w", w.Err)
	}

	return w.Bytes(), nil
}

// SendToContact creates a transaction sending amount of the token from the
// sender to the account the contact is bound to and sends it to the network.
// See SendToContactScript for details.
func (c *Contract) SendToContact(token util.Uint160, from util.Uint160, category *big.Int, value string, secondaryKey *big.Int, amount *big.Int) (util.Uint256, uint32, error) {
	script, err := SendToContactScript(c.hash, token, from, category, value, secondaryKey, amount)
	if err != nil {
		return util.Uint256{}, 0, err
	}

	return c.actor.SendRun(script)
}

// SendToContactTransaction creates a transaction sending amount of the token
// to the contact owner. This transaction is signed, but not sent to the
// network, instead it's returned to the caller.
func (c *Contract) SendToContactTransaction(token util.Uint160, from util.Uint160, category *big.Int, value string, secondaryKey *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	script, err := SendToContactScript(c.hash, token, from, category, value, secondaryKey, amount)
	if err != nil {
		return nil, err
	}

	return c.actor.MakeRun(script)
}

// SendToContactUnsigned creates a transaction sending amount of the token to
// the contact owner. This transaction is not signed, it's simply returned to
// the caller. Any fields of it that do not affect fees can be changed (like
// ValidUntilBlock, Nonce), fee values (SystemFee, NetworkFee) can be
// increased as well.
func (c *Contract) SendToContactUnsigned(token util.Uint160, from util.Uint160, category *big.Int, value string, secondaryKey *big.Int, amount *big.Int) (*transaction.Transaction, error) {
	script, err := SendToContactScript(c.hash, token, from, category, value, secondaryKey, amount)
	if err != nil {
		return nil, err
	}

	return c.actor.MakeUnsignedRun(script, nil)
}

// Deposit transfers GAS to the contract crediting storage balance of the
// account. Zero account means the sender.
func (c *Contract) Deposit(gas Transferer, from util.Uint160, amount *big.Int, account util.Uint160) (util.Uint256, uint32, error) {
	var data any
	if !account.Equals(util.Uint160{}) {
		data = account
	}

	return gas.Transfer(from, c.hash, amount, data)
}
