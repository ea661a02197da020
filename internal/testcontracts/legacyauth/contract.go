// Package legacyauth is a 0.1.x ContactAuth contract keeping contacts in the
// legacy storage layout. It's used to test contract migration.
package legacyauth

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	accountPrefix = "e"
	requestPrefix = "p"
	version       = 1_000
)

type Contact struct {
	Category int
	Value    string
}

// Register appends the contact to the account list.
func Register(owner interop.Hash160, category int, value string) {
	ctx := storage.GetContext()
	key := accountPrefix + string(owner)

	contacts := []Contact{}
	if data := storage.Get(ctx, key); data != nil {
		contacts = std.Deserialize(data.([]byte)).([]Contact)
	}

	contacts = append(contacts, Contact{Category: category, Value: value})
	storage.Put(ctx, key, std.Serialize(contacts))
}

// Request stores pending contact of the account.
func Request(owner interop.Hash160, category int, value string) {
	storage.Put(storage.GetContext(), requestPrefix+string(owner),
		std.Serialize(Contact{Category: category, Value: value}))
}

func Update(nefFile, manifest []byte, data any) {
	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, append(data.([]any), version))
}

func Version() int {
	return version
}
