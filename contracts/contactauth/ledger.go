package contactauth

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neofs-contactauth/common"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
)

const (
	// prefixDeposit contains map from account to its storage balance.
	prefixDeposit byte = 'd'
	// prefixPaid contains map from account to the amount it has paid for
	// the directory data it holds.
	prefixPaid byte = 'b'
)

func depositKey(account interop.Hash160) []byte {
	return append([]byte{prefixDeposit}, account...)
}

func paidKey(account interop.Hash160) []byte {
	return append([]byte{prefixPaid}, account...)
}

func paidOf(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, paidKey(account))
}

func setPaid(ctx storage.Context, account interop.Hash160, amount int) {
	if amount == 0 {
		storage.Delete(ctx, paidKey(account))
		return
	}

	storage.Put(ctx, paidKey(account), amount)
}

func balanceOf(ctx storage.Context, account interop.Hash160) int {
	return common.GetInt(ctx, depositKey(account))
}

func setBalance(ctx storage.Context, account interop.Hash160, amount int) {
	if amount == 0 {
		storage.Delete(ctx, depositKey(account))
		return
	}

	storage.Put(ctx, depositKey(account), amount)
}

func credit(ctx storage.Context, account interop.Hash160, amount int) {
	if amount <= 0 {
		panic(contactconst.ErrInvalidAmount)
	}

	setBalance(ctx, account, balanceOf(ctx, account)+amount)
}

// chargeAmount debits cost from the account balance (credits it if cost is
// negative) and returns the new balance. The balance never goes negative.
func chargeAmount(ctx storage.Context, account interop.Hash160, cost int) int {
	balance := balanceOf(ctx, account) - cost
	if balance < 0 {
		panic(contactconst.ErrInsufficientStorageBalance)
	}

	setBalance(ctx, account, balance)

	return balance
}

// charge pays for bytesDelta bytes of persisted data, negative delta is a
// refund. Refunds never exceed the amount the account has paid, so data
// stored without payment is released for free.
func charge(ctx storage.Context, account interop.Hash160, bytesDelta, pricePerByte int) int {
	cost := bytesDelta * pricePerByte
	paid := paidOf(ctx, account)

	if cost >= 0 {
		balance := chargeAmount(ctx, account, cost)
		setPaid(ctx, account, paid+cost)

		return balance
	}

	refund := -cost
	if refund > paid {
		refund = paid
	}

	setPaid(ctx, account, paid-refund)

	return chargeAmount(ctx, account, -refund)
}

// takeAll zeroes the account balance and returns the previous value.
func takeAll(ctx storage.Context, account interop.Hash160) int {
	amount := balanceOf(ctx, account)
	if amount != 0 {
		setBalance(ctx, account, 0)
	}

	return amount
}
