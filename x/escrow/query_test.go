package escrow

import (
	"context"
	"testing"

	"github.com/iov-one/lockbox"
	"github.com/iov-one/lockbox/coin"
	"github.com/iov-one/lockbox/lockboxtest"
	"github.com/iov-one/lockbox/lockboxtest/assert"
	"github.com/iov-one/lockbox/store"
)

func TestQueryDeposit(t *testing.T) {
	qr := lockbox.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/escrow")
	if h == nil {
		t.Fatal("query handler not registered")
	}

	db := store.MemStore()
	res, err := h.Query(db, nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	alice := lockboxtest.NewCondition().Address()
	m := NewMachine(&mockVault{}, nil)
	assert.Nil(t, m.Deposit(context.Background(), db, alice, coin.NewCoin(2, 0, "IOV")))

	res, err = h.Query(db, []byte("ignored"))
	assert.Nil(t, err)
	if len(res) != 1 {
		t.Fatalf("want one result, got %d", len(res))
	}
	assert.Equal(t, []byte("escrow:deposit"), res[0].Key)

	var d Deposit
	assert.Nil(t, d.Unmarshal(res[0].Value))
	assert.Equal(t, Deposit{Owner: alice, Amount: coin.NewCoin(2, 0, "IOV")}, d)
}
