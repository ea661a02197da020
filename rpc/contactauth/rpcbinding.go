// Package contactauth contains RPC wrappers for ContactAuth contract.
package contactauth

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// ContactauthContact is a contract-specific contactauth.Contact type used by its methods.
type ContactauthContact struct {
	Category *big.Int
	Value string
	SecondaryKey *big.Int
}

// ContactauthRecord is a contract-specific contactauth.Record type used by its methods.
type ContactauthRecord struct {
	Owner util.Uint160
	Contacts []*ContactauthContact
}

// ContactauthRequest is a contract-specific contactauth.Request type used by its methods.
type ContactauthRequest struct {
	Key []byte
	Owner util.Uint160
	Claimed bool
	Contact *ContactauthContact
}

// ContactauthSettings is a contract-specific contactauth.Settings type used by its methods.
type ContactauthSettings struct {
	Admin util.Uint160
	Reservation *big.Int
	Fee *big.Int
	PricePerByte *big.Int
}

// DepositEvent represents "Deposit" event emitted by the contract.
type DepositEvent struct {
	Account util.Uint160
	Amount *big.Int
}

// WithdrawEvent represents "Withdraw" event emitted by the contract.
type WithdrawEvent struct {
	Account util.Uint160
	Amount *big.Int
}

// WhitelistEvent represents "Whitelist" event emitted by the contract.
type WhitelistEvent struct {
	Owner util.Uint160
	RequestKey []byte
}

// ClaimEvent represents "Claim" event emitted by the contract.
type ClaimEvent struct {
	Owner util.Uint160
	RequestKey []byte
	Category *big.Int
	Value string
}

// RequestWithdrawnEvent represents "RequestWithdrawn" event emitted by the contract.
type RequestWithdrawnEvent struct {
	Owner util.Uint160
	RequestKey []byte
}

// BindEvent represents "Bind" event emitted by the contract.
type BindEvent struct {
	Owner util.Uint160
	Category *big.Int
	Value string
}

// UnbindEvent represents "Unbind" event emitted by the contract.
type UnbindEvent struct {
	Owner util.Uint160
	Category *big.Int
	Value string
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Accounts invokes `accounts` method of contract.
func (c *ContractReader) Accounts() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "accounts"))
}

// AccountsExpanded is similar to Accounts (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) AccountsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "accounts", _numOfIteratorItems))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(account util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", account))
}

// FindByOwner invokes `findByOwner` method of contract. It returns nil if
// the owner has no active request.
func (c *ContractReader) FindByOwner(owner util.Uint160) ([]byte, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "findByOwner", owner))
	if err != nil {
		return nil, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return nil, nil
	}
	return item.TryBytes()
}

// GetRequest invokes `getRequest` method of contract.
func (c *ContractReader) GetRequest(owner util.Uint160) (*ContactauthRequest, error) {
	return itemToContactauthRequest(unwrap.Item(c.invoker.Call(c.hash, "getRequest", owner)))
}

// GetSettings invokes `getSettings` method of contract.
func (c *ContractReader) GetSettings() (*ContactauthSettings, error) {
	return itemToContactauthSettings(unwrap.Item(c.invoker.Call(c.hash, "getSettings")))
}

// HasActive invokes `hasActive` method of contract.
func (c *ContractReader) HasActive(owner util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasActive", owner))
}

// List invokes `list` method of contract.
func (c *ContractReader) List(owner util.Uint160) ([]*ContactauthContact, error) {
	return itemToContactauthContacts(unwrap.Item(c.invoker.Call(c.hash, "list", owner)))
}

// ListByCategory invokes `listByCategory` method of contract.
func (c *ContractReader) ListByCategory(owner util.Uint160, category *big.Int) ([]string, error) {
	return unwrap.ArrayOfUTF8Strings(c.invoker.Call(c.hash, "listByCategory", owner, category))
}

// LookupOwner invokes `lookupOwner` method of contract. The second value
// is false if the contact is not bound to any account.
func (c *ContractReader) LookupOwner(category *big.Int, value string, secondaryKey *big.Int) (util.Uint160, bool, error) {
	item, err := unwrap.Item(c.invoker.Call(c.hash, "lookupOwner", category, value, secondaryKey))
	if err != nil {
		return util.Uint160{}, false, err
	}
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, false, nil
	}
	u, err := itemToUint160(item)
	if err != nil {
		return util.Uint160{}, false, err
	}
	return u, true, nil
}

// Page invokes `page` method of contract.
func (c *ContractReader) Page(from *big.Int, limit *big.Int) ([]*ContactauthRecord, error) {
	return func (item stackitem.Item, err error) ([]*ContactauthRecord, error) {
		if err != nil {
			return nil, err
		}
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]*ContactauthRecord, len(arr))
		for i := range res {
			res[i], err = itemToContactauthRecord(arr[i], nil)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	} (unwrap.Item(c.invoker.Call(c.hash, "page", from, limit)))
}

// Route invokes `route` method of contract.
func (c *ContractReader) Route(category *big.Int, value string, secondaryKey *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "route", category, value, secondaryKey))
}

// StorageUsage invokes `storageUsage` method of contract.
func (c *ContractReader) StorageUsage() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "storageUsage"))
}

// Unmigrated invokes `unmigrated` method of contract.
func (c *ContractReader) Unmigrated(owner util.Uint160) ([]*ContactauthContact, error) {
	return itemToContactauthContacts(unwrap.Item(c.invoker.Call(c.hash, "unmigrated", owner)))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(key []byte, category *big.Int, value string, secondaryKey *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", key, category, value, secondaryKey)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(key []byte, category *big.Int, value string, secondaryKey *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", key, category, value, secondaryKey)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(key []byte, category *big.Int, value string, secondaryKey *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, key, category, value, secondaryKey)
}

// Confirm creates a transaction invoking `confirm` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Confirm(secret []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "confirm", secret)
}

// ConfirmTransaction creates a transaction invoking `confirm` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ConfirmTransaction(secret []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "confirm", secret)
}

// ConfirmUnsigned creates a transaction invoking `confirm` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ConfirmUnsigned(secret []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "confirm", nil, secret)
}

// DropUnmigrated creates a transaction invoking `dropUnmigrated` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DropUnmigrated(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "dropUnmigrated", owner)
}

// DropUnmigratedTransaction creates a transaction invoking `dropUnmigrated` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DropUnmigratedTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "dropUnmigrated", owner)
}

// DropUnmigratedUnsigned creates a transaction invoking `dropUnmigrated` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DropUnmigratedUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "dropUnmigrated", nil, owner)
}

// Unbind creates a transaction invoking `unbind` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unbind(owner util.Uint160, category *big.Int, value string, secondaryKey *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unbind", owner, category, value, secondaryKey)
}

// UnbindTransaction creates a transaction invoking `unbind` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnbindTransaction(owner util.Uint160, category *big.Int, value string, secondaryKey *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unbind", owner, category, value, secondaryKey)
}

// UnbindUnsigned creates a transaction invoking `unbind` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnbindUnsigned(owner util.Uint160, category *big.Int, value string, secondaryKey *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unbind", nil, owner, category, value, secondaryKey)
}

// UnbindAll creates a transaction invoking `unbindAll` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UnbindAll(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unbindAll", owner)
}

// UnbindAllTransaction creates a transaction invoking `unbindAll` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnbindAllTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unbindAll", owner)
}

// UnbindAllUnsigned creates a transaction invoking `unbindAll` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnbindAllUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unbindAll", nil, owner)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// Whitelist creates a transaction invoking `whitelist` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Whitelist(owner util.Uint160, key []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "whitelist", owner, key)
}

// WhitelistTransaction creates a transaction invoking `whitelist` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WhitelistTransaction(owner util.Uint160, key []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "whitelist", owner, key)
}

// WhitelistUnsigned creates a transaction invoking `whitelist` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WhitelistUnsigned(owner util.Uint160, key []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "whitelist", nil, owner, key)
}

// Withdraw creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Withdraw(account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", account)
}

// WithdrawTransaction creates a transaction invoking `withdraw` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawTransaction(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdraw", account)
}

// WithdrawUnsigned creates a transaction invoking `withdraw` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawUnsigned(account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdraw", nil, account)
}

// WithdrawRequest creates a transaction invoking `withdrawRequest` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawRequest(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawRequest", owner)
}

// WithdrawRequestTransaction creates a transaction invoking `withdrawRequest` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawRequestTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawRequest", owner)
}

// WithdrawRequestUnsigned creates a transaction invoking `withdrawRequest` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawRequestUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawRequest", nil, owner)
}

// itemToUint160 converts stack item into util.Uint160.
func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

// itemToUTF8String converts stack item into a valid UTF-8 string.
func itemToUTF8String(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}

// itemToContactauthContact converts stack item into *ContactauthContact.
func itemToContactauthContact(item stackitem.Item, err error) (*ContactauthContact, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContactauthContact)
	err = res.FromStackItem(item)
	return res, err
}

// itemToContactauthContacts converts stack item into []*ContactauthContact.
func itemToContactauthContacts(item stackitem.Item, err error) ([]*ContactauthContact, error) {
	if err != nil {
		return nil, err
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]*ContactauthContact, len(arr))
	for i := range res {
		res[i], err = itemToContactauthContact(arr[i], nil)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return res, nil
}

// FromStackItem retrieves fields of ContactauthContact from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContactauthContact) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Category, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	index++
	res.Value, err = itemToUTF8String(arr[index])
	if err != nil {
		return fmt.Errorf("field Value: %w", err)
	}

	index++
	res.SecondaryKey, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SecondaryKey: %w", err)
	}

	return nil
}

// itemToContactauthRecord converts stack item into *ContactauthRecord.
func itemToContactauthRecord(item stackitem.Item, err error) (*ContactauthRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContactauthRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContactauthRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContactauthRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Contacts, err = itemToContactauthContacts(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Contacts: %w", err)
	}

	return nil
}

// itemToContactauthRequest converts stack item into *ContactauthRequest.
func itemToContactauthRequest(item stackitem.Item, err error) (*ContactauthRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContactauthRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContactauthRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContactauthRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Key, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Key: %w", err)
	}

	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Claimed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Claimed: %w", err)
	}

	index++
	res.Contact, err = itemToContactauthContact(arr[index], nil)
	if err != nil {
		return fmt.Errorf("field Contact: %w", err)
	}

	return nil
}

// itemToContactauthSettings converts stack item into *ContactauthSettings.
func itemToContactauthSettings(item stackitem.Item, err error) (*ContactauthSettings, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContactauthSettings)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContactauthSettings from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *ContactauthSettings) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Admin, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Admin: %w", err)
	}

	index++
	res.Reservation, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reservation: %w", err)
	}

	index++
	res.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	res.PricePerByte, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerByte: %w", err)
	}

	return nil
}
