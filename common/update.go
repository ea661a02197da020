package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/neo"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess checks whether the transaction is signed by the committee
// multisignature account (M = N/2+1).
func HasUpdateAccess() bool {
	committee := neo.GetCommittee()
	return runtime.CheckWitness(contract.CreateMultisigAccount(len(committee)/2+1, committee))
}
