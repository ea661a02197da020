package contactauth

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/policy"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-contactauth/common"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
)

// Settings groups contract configuration set on deployment.
type Settings struct {
	// Admin is the only account allowed to whitelist requests.
	Admin interop.Hash160
	// Reservation is the amount debited from the requester on whitelisting.
	Reservation int
	// Fee is the part of the reservation retained on confirmation or
	// withdrawal. It is credited to the Admin balance.
	Fee int
	// PricePerByte is the cost of one byte persisted in the directory.
	PricePerByte int
}

const settingsKey byte = 's'

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)

		// 0.1.x stored contacts in the legacy shape without settings.
		if version < 2_000 {
			putSettings(ctx, parseSettings(args))
			migrateLegacy(ctx)
		}

		return
	}

	if data == nil {
		panic("missing deploy arguments")
	}

	putSettings(ctx, parseSettings(data.([]any)))

	runtime.Log("contactauth contract initialized")
}

func parseSettings(args []any) Settings {
	if len(args) < 4 {
		panic("invalid deploy arguments: expected admin, reservation, fee and price")
	}

	s := Settings{
		Admin:        args[0].(interop.Hash160),
		Reservation:  args[1].(int),
		Fee:          args[2].(int),
		PricePerByte: args[3].(int),
	}

	if len(s.Admin) != interop.Hash160Len {
		panic("invalid administrator")
	}

	if s.Fee < 0 || s.Reservation <= 0 || s.Reservation < s.Fee {
		panic(contactconst.ErrInvalidAmount + ": reservation must be positive and cover the fee")
	}

	switch {
	case s.PricePerByte < 0:
		panic(contactconst.ErrInvalidAmount + ": negative price per byte")
	case s.PricePerByte == 0:
		s.PricePerByte = policy.GetStoragePrice()
	}

	return s
}

func putSettings(ctx storage.Context, s Settings) {
	common.SetSerialized(ctx, settingsKey, s)
}

func getSettings(ctx storage.Context) Settings {
	return std.Deserialize(storage.Get(ctx, settingsKey).([]byte)).(Settings)
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("contactauth contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Transferred GAS is deposited to the storage balance of the sender or of
// the account passed as data.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	caller := runtime.GetCallingScriptHash()
	if !caller.Equals(gas.Hash) {
		panic("only GAS can be accepted for deposit")
	}

	if amount <= 0 {
		panic(contactconst.ErrInvalidAmount)
	}

	rcv := data.(interop.Hash160)
	switch len(rcv) {
	case interop.Hash160Len:
	case 0:
		rcv = from
	default:
		panic("invalid data argument, expected Hash160")
	}

	ctx := storage.GetContext()
	credit(ctx, rcv, amount)

	runtime.Notify("Deposit", rcv, amount)
}

// Withdraw transfers the whole storage balance of the account back to it
// and returns the transferred amount. Zero balance is not an error.
func Withdraw(account interop.Hash160) int {
	common.CheckWitness(account, contactconst.ErrPermissionMismatch)

	ctx := storage.GetContext()

	amount := takeAll(ctx, account)
	if amount == 0 {
		return 0
	}

	if !gas.Transfer(runtime.GetExecutingScriptHash(), account, amount, nil) {
		panic("failed to transfer funds, aborting")
	}

	runtime.Notify("Withdraw", account, amount)

	return amount
}

// BalanceOf returns storage balance of the account.
func BalanceOf(account interop.Hash160) int {
	return balanceOf(storage.GetReadOnlyContext(), account)
}

// StorageUsage returns the number of bytes occupied by the contact directory.
func StorageUsage() int {
	return storageUsage(storage.GetReadOnlyContext())
}

// GetSettings returns contract configuration.
func GetSettings() Settings {
	return getSettings(storage.GetReadOnlyContext())
}

// Whitelist creates a request for the owner identified by the request key
// (SHA-256 of a secret known to the owner) and reserves storage for it. It
// can be invoked only by the administrator.
func Whitelist(owner interop.Hash160, key []byte) {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}

	ctx := storage.GetContext()
	s := getSettings(ctx)

	common.CheckWitness(s.Admin, contactconst.ErrPermissionDenied)

	if balanceOf(ctx, owner) < s.Reservation {
		panic(contactconst.ErrInsufficientStorageBalance)
	}

	createRequest(ctx, owner, key)
	chargeAmount(ctx, owner, s.Reservation)

	runtime.Notify("Whitelist", owner, key)
}

// Claim attaches a contact to the whitelisted request. It can be invoked only
// by the request owner.
func Claim(key []byte, category int, value string, secondaryKey int) {
	ctx := storage.GetContext()

	req, ok := getRequest(ctx, key)
	if !ok {
		panic(contactconst.ErrRequestNotWhitelisted + ": request does not exist")
	}

	common.CheckWitness(req.Owner, contactconst.ErrPermissionMismatch)

	c := newContact(category, value, secondaryKey)
	if lookupOwner(ctx, c) != nil {
		panic(contactconst.ErrContactAlreadyRegistered)
	}

	claimRequest(ctx, req, c)

	runtime.Notify("Claim", req.Owner, key, c.Category, c.Value)
}

// Confirm binds the claimed contact to the request owner. The request is
// found by SHA-256 of the secret. Reservation is returned to the owner
// except the protocol fee and the cost of stored contact data.
func Confirm(secret []byte) {
	ctx := storage.GetContext()

	req, ok := getRequest(ctx, crypto.Sha256(secret))
	if !ok {
		panic(contactconst.ErrRequestNotFound)
	}

	common.CheckWitness(req.Owner, contactconst.ErrPermissionMismatch)

	if !req.Claimed {
		panic(contactconst.ErrUndefinedContact)
	}

	s := getSettings(ctx)

	removeRequest(ctx, req)
	releaseReservation(ctx, s, req.Owner)

	before := storageUsage(ctx)
	bind(ctx, req.Owner, req.Contact)
	charge(ctx, req.Owner, storageUsage(ctx)-before, s.PricePerByte)

	resolveUnmigrated(ctx, req.Owner, req.Contact)
}

// WithdrawRequest drops active request of the owner. Reservation is returned
// to the owner except the protocol fee.
func WithdrawRequest(owner interop.Hash160) {
	common.CheckWitness(owner, contactconst.ErrPermissionMismatch)

	ctx := storage.GetContext()

	key := findByOwner(ctx, owner)
	if key == nil {
		panic(contactconst.ErrRequestNotFound)
	}

	req, _ := getRequest(ctx, key)

	removeRequest(ctx, req)
	releaseReservation(ctx, getSettings(ctx), owner)

	runtime.Notify("RequestWithdrawn", owner, key)
}

// releaseReservation credits the reservation back to the owner except the
// fee which goes to the administrator.
func releaseReservation(ctx storage.Context, s Settings, owner interop.Hash160) {
	refund := s.Reservation - s.Fee
	if refund > 0 {
		credit(ctx, owner, refund)
	}

	if s.Fee > 0 {
		credit(ctx, s.Admin, s.Fee)
	}
}

// Unbind removes the contact from the owner's directory entry and refunds
// the freed storage up to the amount paid for it.
func Unbind(owner interop.Hash160, category int, value string, secondaryKey int) {
	common.CheckWitness(owner, contactconst.ErrPermissionMismatch)

	ctx := storage.GetContext()
	c := newContact(category, value, secondaryKey)

	before := storageUsage(ctx)
	unbind(ctx, owner, c)
	charge(ctx, owner, storageUsage(ctx)-before, getSettings(ctx).PricePerByte)
}

// UnbindAll removes every contact of the owner, refunds the freed storage and
// returns the number of removed contacts.
func UnbindAll(owner interop.Hash160) int {
	common.CheckWitness(owner, contactconst.ErrPermissionMismatch)

	ctx := storage.GetContext()

	before := storageUsage(ctx)
	removed := unbindAll(ctx, owner)
	if len(removed) != 0 {
		charge(ctx, owner, storageUsage(ctx)-before, getSettings(ctx).PricePerByte)
	}

	return len(removed)
}

// Unmigrated returns contacts of the account left from the legacy contract
// version which need to be confirmed with a secondary key.
func Unmigrated(owner interop.Hash160) []Contact {
	return listUnmigrated(storage.GetReadOnlyContext(), owner)
}

// DropUnmigrated removes all unmigrated contacts of the account.
func DropUnmigrated(owner interop.Hash160) {
	common.CheckWitness(owner, contactconst.ErrPermissionMismatch)

	putUnmigrated(storage.GetContext(), owner, nil)
}

// GetRequest returns active request of the owner.
func GetRequest(owner interop.Hash160) Request {
	ctx := storage.GetReadOnlyContext()

	key := findByOwner(ctx, owner)
	if key == nil {
		panic(contactconst.ErrRequestNotFound)
	}

	req, _ := getRequest(ctx, key)

	return req
}

// FindByOwner returns request key of the owner's active request or nil.
func FindByOwner(owner interop.Hash160) []byte {
	return findByOwner(storage.GetReadOnlyContext(), owner)
}

// HasActive checks whether the owner has an active request.
func HasActive(owner interop.Hash160) bool {
	return findByOwner(storage.GetReadOnlyContext(), owner) != nil
}

// List returns contacts bound to the account in the order of binding.
func List(owner interop.Hash160) []Contact {
	return listContacts(storage.GetReadOnlyContext(), owner)
}

// ListByCategory returns values of the account contacts of the given category.
func ListByCategory(owner interop.Hash160, category int) []string {
	return listByCategory(storage.GetReadOnlyContext(), owner, category)
}

// LookupOwner returns the account the contact is bound to or nil.
func LookupOwner(category int, value string, secondaryKey int) interop.Hash160 {
	return lookupOwner(storage.GetReadOnlyContext(), newContact(category, value, secondaryKey))
}

// Route resolves the contact to the account that should receive payments
// addressed to it. It panics if the contact is not bound.
func Route(category int, value string, secondaryKey int) interop.Hash160 {
	owner := lookupOwner(storage.GetReadOnlyContext(), newContact(category, value, secondaryKey))
	if owner == nil {
		panic(contactconst.ErrContactNotFound)
	}

	return owner
}

// Page returns at most limit directory records skipping the first from
// records.
func Page(from, limit int) []Record {
	return page(storage.GetReadOnlyContext(), from, limit)
}

// Accounts returns an iterator over accounts having at least one contact.
func Accounts() iterator.Iterator {
	return storage.Find(storage.GetReadOnlyContext(), []byte{prefixAccount}, storage.KeysOnly|storage.RemovePrefix)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
