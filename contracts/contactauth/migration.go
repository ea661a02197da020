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

// Legacy storage layout of 0.1.x contracts.
const (
	// legacyAccountPrefix contains map from account to []legacyContact.
	legacyAccountPrefix byte = 'e'
	// legacyRequestPrefix contains map from account to its pending
	// legacyContact.
	legacyRequestPrefix byte = 'p'
)

// prefixUnmigrated contains map from account to legacy contacts which can't
// be bound without a secondary key. They are kept until the account confirms
// them again or drops them.
const prefixUnmigrated byte = 'm'


// Temporary migration-related types.
// nolint:deadcode,unused
type legacyContact struct {
	Category int
	Value    string
}

// legacyCategories maps legacy category numbers to current ones.
func legacyCategories() []int {
	return []int{
		contactconst.Email,
		contactconst.Telegram,
		contactconst.Twitter,
		contactconst.GovForum,
	}
}

// migrateLegacy moves contacts stored in the legacy shape into the directory.
// Contacts which can't be represented in the current shape or duplicate
// already migrated ones are dropped. Legacy pending requests are dropped too
// since they have no request key. Contacts lacking a secondary key are put
// aside as unmigrated ones.
func migrateLegacy(ctx storage.Context) {
	var (
		records  = []kv{}
		requests = [][]byte{}
	)

	it := storage.Find(ctx, []byte{legacyAccountPrefix}, storage.RemovePrefix)
	for iterator.Next(it) {
		records = append(records, iterator.Value(it).(kv))
	}

	it = storage.Find(ctx, []byte{legacyRequestPrefix}, storage.KeysOnly)
	for iterator.Next(it) {
		requests = append(requests, iterator.Value(it).([]byte))
	}

	categories := legacyCategories()

	for i := range records {
		owner := interop.Hash160(records[i].k)
		contacts := std.Deserialize(records[i].v).([]legacyContact)
		unmigrated := []Contact{}

		for j := range contacts {
			lc := contacts[j]
			if lc.Category < 0 || lc.Category >= len(categories) {
				runtime.Log("migration: unknown legacy category, contact dropped")
				continue
			}

			category := categories[lc.Category]
			c := Contact{
				Category: category,
				Value:    normalizeValue(lc.Value, isHandle(category)),
			}

			if len(c.Value) == 0 {
				runtime.Log("migration: empty legacy contact dropped")
				continue
			}

			if usesSecondaryKey(category) {
				runtime.Log("migration: contact without secondary key put aside: " + c.Value)
				unmigrated = append(unmigrated, c)
				continue
			}

			if lookupOwner(ctx, c) != nil {
				runtime.Log("migration: duplicated contact dropped: " + c.Value)
				continue
			}

			bind(ctx, owner, c)
		}

		putUnmigrated(ctx, owner, unmigrated)
		storage.Delete(ctx, append([]byte{legacyAccountPrefix}, owner...))
	}

	for i := range requests {
		storage.Delete(ctx, requests[i])
	}

	runtime.Log("legacy contacts migrated")
}

func unmigratedKey(owner interop.Hash160) []byte {
	return append([]byte{prefixUnmigrated}, owner...)
}

func listUnmigrated(ctx storage.Context, owner interop.Hash160) []Contact {
	data := storage.Get(ctx, unmigratedKey(owner))
	if data == nil {
		return []Contact{}
	}

	return std.Deserialize(data.([]byte)).([]Contact)
}

func putUnmigrated(ctx storage.Context, owner interop.Hash160, contacts []Contact) {
	if len(contacts) == 0 {
		storage.Delete(ctx, unmigratedKey(owner))
		return
	}

	common.SetSerialized(ctx, unmigratedKey(owner), contacts)
}

// resolveUnmigrated drops unmigrated contacts of the owner having the same
// category and value as the bound one.
func resolveUnmigrated(ctx storage.Context, owner interop.Hash160, c Contact) {
	var (
		contacts = listUnmigrated(ctx, owner)
		left     = []Contact{}
	)

	if len(contacts) == 0 {
		return
	}

	for i := range contacts {
		if contacts[i].Category == c.Category && contacts[i].Value == c.Value {
			continue
		}

		left = append(left, contacts[i])
	}

	if len(left) != len(contacts) {
		putUnmigrated(ctx, owner, left)
	}
}
