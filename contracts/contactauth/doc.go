/*
Package contactauth implements ContactAuth contract which binds external
contacts (e-mail addresses, messenger and social network handles) to Neo
accounts.

Binding is a two-phase procedure. The requester generates a secret and passes
its SHA-256 hash (request key) to the administrator. The administrator
whitelists the request key for the requester account, which reserves storage
for the future contact. The requester claims the request with a contact and,
once ownership of the contact is verified off-chain, presents the secret to
confirm the binding. A contact may be bound to a single account only.

Every account pays for the storage its contacts occupy. GAS transferred to the
contract is deposited to the sender storage balance (or to the account passed
as transfer data). Whitelisting debits a fixed reservation, confirmation
returns the reservation except the protocol fee and the cost of the stored
contact. Unbinding refunds freed storage, but never more than the account has
paid for its contacts. The balance can be withdrawn at any time.

Contacts of 0.1.x contract versions are migrated on update. Those which need a
secondary key are kept aside (see unmigrated method) until the account binds
them again or drops them.

# Contract notifications

Deposit notification. This notification is produced when GAS is deposited to
the account storage balance.

	Deposit:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification. This notification is produced when the storage
balance is transferred back to the account.

	Withdraw:
	  - name: account
	    type: Hash160
	  - name: amount
	    type: Integer

Whitelist notification. This notification is produced when the administrator
creates a request.

	Whitelist:
	  - name: owner
	    type: Hash160
	  - name: requestKey
	    type: ByteArray

Claim notification. This notification is produced when the request owner
attaches a contact to the request. Off-chain verifiers catch it and deliver
the secret confirmation flow through the contact channel.

	Claim:
	  - name: owner
	    type: Hash160
	  - name: requestKey
	    type: ByteArray
	  - name: category
	    type: Integer
	  - name: value
	    type: String

RequestWithdrawn notification. This notification is produced when the owner
drops the active request.

	RequestWithdrawn:
	  - name: owner
	    type: Hash160
	  - name: requestKey
	    type: ByteArray

Bind notification. This notification is produced when a contact is bound to
the account.

	Bind:
	  - name: owner
	    type: Hash160
	  - name: category
	    type: Integer
	  - name: value
	    type: String

Unbind notification. This notification is produced when a contact is removed
from the account.

	Unbind:
	  - name: owner
	    type: Hash160
	  - name: category
	    type: Integer
	  - name: value
	    type: String
*/
package contactauth
