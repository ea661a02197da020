package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// CheckWitness panics with errMsg if the transaction isn't signed by the
// account.
func CheckWitness(account []byte, errMsg string) {
	if !runtime.CheckWitness(account) {
		panic(errMsg)
	}
}
