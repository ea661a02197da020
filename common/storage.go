package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized puts std-serialized value into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	storage.Put(ctx, key, std.Serialize(value))
}

// GetInt returns integer stored by the key, missing value is 0.
func GetInt(ctx storage.Context, key any) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return 0
	}

	return data.(int)
}
