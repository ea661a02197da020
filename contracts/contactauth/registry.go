package contactauth

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-contactauth/common"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
)

// Prefixes used for request registry data storage.
const (
	// prefixRequest contains map from request key to Request.
	prefixRequest byte = 'r'
	// prefixActive contains map from request owner to its request key.
	prefixActive byte = 'q'
)

// Request is a pending contact binding request. A whitelisted request has no
// contact, a claimed one waits for the secret to be presented.
type Request struct {
	Key     []byte
	Owner   interop.Hash160
	Claimed bool
	Contact Contact
}

func requestKey(key []byte) []byte {
	return append([]byte{prefixRequest}, key...)
}

func activeKey(owner interop.Hash160) []byte {
	return append([]byte{prefixActive}, owner...)
}

func checkRequestKey(key []byte) {
	if len(key) != contactconst.RequestKeyLength {
		panic(contactconst.ErrInvalidRequestKey)
	}
}

// getRequest returns the request stored by the key and true, or false if
// there is no such request.
func getRequest(ctx storage.Context, key []byte) (Request, bool) {
	data := storage.Get(ctx, requestKey(key))
	if data == nil {
		return Request{}, false
	}

	return std.Deserialize(data.([]byte)).(Request), true
}

func putRequest(ctx storage.Context, req Request) {
	common.SetSerialized(ctx, requestKey(req.Key), req)
}

// findByOwner returns the key of the active request of the owner or nil.
func findByOwner(ctx storage.Context, owner interop.Hash160) []byte {
	data := storage.Get(ctx, activeKey(owner))
	if data == nil {
		return nil
	}

	return data.([]byte)
}

// createRequest registers a whitelisted request. It panics if the owner
// already has an active request or the key is taken.
func createRequest(ctx storage.Context, owner interop.Hash160, key []byte) {
	checkRequestKey(key)

	if findByOwner(ctx, owner) != nil {
		panic(contactconst.ErrDuplicateRequest + ": account has an active request")
	}

	if storage.Get(ctx, requestKey(key)) != nil {
		panic(contactconst.ErrDuplicateRequest + ": request key is in use")
	}

	putRequest(ctx, Request{
		Key:     key,
		Owner:   owner,
		Contact: Contact{},
	})
	storage.Put(ctx, activeKey(owner), key)
}

// claimRequest attaches normalized contact to the whitelisted request.
func claimRequest(ctx storage.Context, req Request, c Contact) Request {
	if req.Claimed {
		panic(contactconst.ErrRequestNotWhitelisted + ": contact is already claimed")
	}

	req.Claimed = true
	req.Contact = c
	putRequest(ctx, req)

	return req
}

// removeRequest drops the request and the owner index entry.
func removeRequest(ctx storage.Context, req Request) {
	storage.Delete(ctx, requestKey(req.Key))
	storage.Delete(ctx, activeKey(req.Owner))
}
