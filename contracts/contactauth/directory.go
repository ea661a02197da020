package contactauth

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-contactauth/common"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
)

// Prefixes used for directory data storage.
const (
	// prefixAccount contains map from account to the list of its contacts.
	prefixAccount byte = 'a'
	// prefixOwner contains map from contact key to the contact owner.
	prefixOwner byte = 'o'
	// usageKey contains the number of bytes used by the directory.
	usageKey byte = 'u'
)

// Record is a directory entry: an account with all contacts bound to it.
type Record struct {
	Owner    interop.Hash160
	Contacts []Contact
}

// nolint:unused
type kv struct {
	k []byte
	v []byte
}

func accountKey(owner interop.Hash160) []byte {
	return append([]byte{prefixAccount}, owner...)
}

func ownerKey(key interop.Hash256) []byte {
	return append([]byte{prefixOwner}, key...)
}

// storageUsage returns the number of bytes persisted by the directory.
func storageUsage(ctx storage.Context) int {
	return common.GetInt(ctx, usageKey)
}

func addUsage(ctx storage.Context, delta int) {
	if delta == 0 {
		return
	}

	storage.Put(ctx, usageKey, storageUsage(ctx)+delta)
}

// putTracked puts value into storage accounting the size difference.
func putTracked(ctx storage.Context, key []byte, value []byte) {
	delta := len(key) + len(value)

	old := storage.Get(ctx, key)
	if old != nil {
		delta -= len(key) + len(old.([]byte))
	}

	storage.Put(ctx, key, value)
	addUsage(ctx, delta)
}

// deleteTracked removes value from storage accounting the freed bytes.
func deleteTracked(ctx storage.Context, key []byte) {
	old := storage.Get(ctx, key)
	if old == nil {
		return
	}

	storage.Delete(ctx, key)
	addUsage(ctx, -(len(key) + len(old.([]byte))))
}

func listContacts(ctx storage.Context, owner interop.Hash160) []Contact {
	data := storage.Get(ctx, accountKey(owner))
	if data == nil {
		return []Contact{}
	}

	return std.Deserialize(data.([]byte)).([]Contact)
}

func putContacts(ctx storage.Context, owner interop.Hash160, contacts []Contact) {
	key := accountKey(owner)
	if len(contacts) == 0 {
		deleteTracked(ctx, key)
		return
	}

	putTracked(ctx, key, std.Serialize(contacts))
}

// lookupOwner returns the owner of the normalized contact or nil.
func lookupOwner(ctx storage.Context, c Contact) interop.Hash160 {
	data := storage.Get(ctx, ownerKey(contactKey(c)))
	if data == nil {
		return nil
	}

	return data.(interop.Hash160)
}

// bind appends normalized contact to the owner's list and indexes it.
func bind(ctx storage.Context, owner interop.Hash160, c Contact) {
	if lookupOwner(ctx, c) != nil {
		panic(contactconst.ErrContactAlreadyRegistered)
	}

	contacts := listContacts(ctx, owner)
	contacts = append(contacts, c)

	putContacts(ctx, owner, contacts)
	putTracked(ctx, ownerKey(contactKey(c)), owner)

	runtime.Notify("Bind", owner, c.Category, c.Value)
}

// unbind removes the contact with the same contact key from the owner's list
// and from the index. Other contacts are left untouched.
func unbind(ctx storage.Context, owner interop.Hash160, c Contact) {
	var (
		key      = contactKey(c)
		contacts = listContacts(ctx, owner)
		left     = []Contact{}
		removed  Contact
		found    bool
	)

	for i := range contacts {
		if key.Equals(contactKey(contacts[i])) {
			removed = contacts[i]
			found = true
			continue
		}

		left = append(left, contacts[i])
	}

	if !found {
		panic(contactconst.ErrNotOwner)
	}

	putContacts(ctx, owner, left)
	deleteTracked(ctx, ownerKey(key))

	runtime.Notify("Unbind", owner, removed.Category, removed.Value)
}

// unbindAll removes every contact of the owner and returns them.
func unbindAll(ctx storage.Context, owner interop.Hash160) []Contact {
	contacts := listContacts(ctx, owner)

	for i := range contacts {
		deleteTracked(ctx, ownerKey(contactKey(contacts[i])))
		runtime.Notify("Unbind", owner, contacts[i].Category, contacts[i].Value)
	}

	deleteTracked(ctx, accountKey(owner))

	return contacts
}

func listByCategory(ctx storage.Context, owner interop.Hash160, category int) []string {
	var (
		contacts = listContacts(ctx, owner)
		res      = []string{}
	)

	for i := range contacts {
		if contacts[i].Category == category {
			res = append(res, contacts[i].Value)
		}
	}

	return res
}

// page returns up to limit directory records skipping the first from ones.
func page(ctx storage.Context, from, limit int) []Record {
	if from < 0 || limit < 0 || limit > contactconst.MaxPageLimit {
		panic(contactconst.ErrLimitExceeded)
	}

	res := []Record{}
	if limit == 0 {
		return res
	}

	var (
		i  int
		it = storage.Find(ctx, []byte{prefixAccount}, storage.RemovePrefix)
	)

	for iterator.Next(it) {
		if i < from {
			i++
			continue
		}

		item := iterator.Value(it).(kv)
		res = append(res, Record{
			Owner:    item.k,
			Contacts: std.Deserialize(item.v).([]Contact),
		})

		if len(res) == limit {
			break
		}
	}

	return res
}
