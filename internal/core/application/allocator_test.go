package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dashwallet/walletd/internal/core/application"
	"github.com/dashwallet/walletd/internal/core/domain"
)

func TestEnsureAddressAvailable(t *testing.T) {
	t.Parallel()

	svc, db, _ := newTestEnv()
	wallet := createTestWallet(t, svc, "main")
	account := createTestAccount(t, svc, wallet.ID, 3)

	allocator := application.NewAddressAllocator(
		db.WalletRepository(), db.AccountRepository(), db.AddressRepository(),
		fakeDeriver{},
	)

	// the chain already ends with an unused address, nothing is derived
	address, derived, err := allocator.EnsureAddressAvailable(
		ctx(), account.ID, domain.ExternalChain,
	)
	require.NoError(t, err)
	require.False(t, derived)
	require.Equal(t, uint32(0), address.Index)

	// once the last address is used the next index must appear
	err = db.AddressRepository().UpdateAddress(
		ctx(), address.Address,
		func(a *domain.WatchedAddress) (*domain.WatchedAddress, error) {
			a.RecordActivity("tx1", "tx1:0", domain.Balance{Total: 10})
			return a, nil
		},
	)
	require.NoError(t, err)

	next, derived, err := allocator.EnsureAddressAvailable(
		ctx(), account.ID, domain.ExternalChain,
	)
	require.NoError(t, err)
	require.True(t, derived)
	require.Equal(t, uint32(1), next.Index)
	require.Equal(t, "m/44'/5'/0'/0/1", next.DerivationPath)

	// the chain ends unused again, repeating is a no-op
	same, derived, err := allocator.EnsureAddressAvailable(
		ctx(), account.ID, domain.ExternalChain,
	)
	require.NoError(t, err)
	require.False(t, derived)
	require.Equal(t, next.Address, same.Address)

	// the internal chain allocates independently from index 0
	change, derived, err := allocator.EnsureAddressAvailable(
		ctx(), account.ID, domain.InternalChain,
	)
	require.NoError(t, err)
	require.True(t, derived)
	require.Equal(t, uint32(0), change.Index)
	require.True(t, change.IsChange)
}

func TestEnsureAddressAvailableUnusedGapSurvives(t *testing.T) {
	t.Parallel()

	svc, db, _ := newTestEnv()
	wallet := createTestWallet(t, svc, "main")
	account := createTestAccount(t, svc, wallet.ID, 5)

	allocator := application.NewAddressAllocator(
		db.WalletRepository(), db.AccountRepository(), db.AddressRepository(),
		fakeDeriver{},
	)

	derived, err := allocator.ExtendAddresses(ctx(), account.ID, domain.ExternalChain, 3)
	require.NoError(t, err)
	require.Len(t, derived, 3)

	// using a middle address leaves the trailing unused run intact
	err = db.AddressRepository().UpdateAddress(
		ctx(), derived[0].Address,
		func(a *domain.WatchedAddress) (*domain.WatchedAddress, error) {
			a.RecordActivity("tx1", "tx1:0", domain.Balance{Total: 10})
			return a, nil
		},
	)
	require.NoError(t, err)

	address, wasDerived, err := allocator.EnsureAddressAvailable(
		ctx(), account.ID, domain.ExternalChain,
	)
	require.NoError(t, err)
	require.False(t, wasDerived)
	// the receive candidate is still the lowest-index unused address
	require.Equal(t, uint32(0), address.Index)

	addresses, err := db.AddressRepository().GetAddressesForAccount(ctx(), account.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 4)
}

func TestFailingEnsureAddressAvailable(t *testing.T) {
	t.Parallel()

	svc, db, _ := newTestEnv()
	wallet := createTestWallet(t, svc, "main")
	account := createTestAccount(t, svc, wallet.ID, 3)

	// use the seeded address so the next call has to derive
	addresses, err := db.AddressRepository().GetAddressesForAccount(ctx(), account.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	err = db.AddressRepository().UpdateAddress(
		ctx(), addresses[0].Address,
		func(a *domain.WatchedAddress) (*domain.WatchedAddress, error) {
			a.RecordActivity("tx1", "tx1:0", domain.Balance{Total: 10})
			return a, nil
		},
	)
	require.NoError(t, err)

	allocator := application.NewAddressAllocator(
		db.WalletRepository(), db.AccountRepository(), db.AddressRepository(),
		failingDeriver{},
	)

	_, derived, err := allocator.EnsureAddressAvailable(
		ctx(), account.ID, domain.ExternalChain,
	)
	require.ErrorIs(t, err, domain.ErrMalformedExtendedKey)
	require.False(t, derived)

	extended, err := allocator.ExtendAddresses(ctx(), account.ID, domain.ExternalChain, 2)
	require.ErrorIs(t, err, domain.ErrMalformedExtendedKey)
	require.Empty(t, extended)

	// no partial address survived the failed derivations
	addresses, err = db.AddressRepository().GetAddressesForAccount(ctx(), account.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	require.Equal(t, uint32(0), addresses[0].Index)
}

func TestFailingReceiveAddress(t *testing.T) {
	t.Parallel()

	svc, db, _ := newTestEnv()
	wallet := createTestWallet(t, svc, "main")
	account := createTestAccount(t, svc, wallet.ID, 3)

	allocator := application.NewAddressAllocator(
		db.WalletRepository(), db.AccountRepository(), db.AddressRepository(),
		fakeDeriver{},
	)

	addresses, err := db.AddressRepository().GetAddressesForAccount(ctx(), account.ID)
	require.NoError(t, err)
	for _, address := range addresses {
		err = db.AddressRepository().UpdateAddress(
			ctx(), address.Address,
			func(a *domain.WatchedAddress) (*domain.WatchedAddress, error) {
				a.RecordActivity("tx1", "tx1:0", domain.Balance{Total: 10})
				return a, nil
			},
		)
		require.NoError(t, err)
	}

	_, err = allocator.ReceiveAddress(ctx(), account.ID)
	require.EqualError(t, err, application.ErrNoReceiveAddress.Error())
}
