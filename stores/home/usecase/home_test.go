package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain/listing"
	mListing "github.com/x-xyz/chimera/domain/listing/mocks"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/session"
	mSession "github.com/x-xyz/chimera/domain/session/mocks"
	"github.com/x-xyz/chimera/service/wallet/wallettest"
	sessionUsecase "github.com/x-xyz/chimera/stores/session/usecase"
)

func TestLoad(t *testing.T) {
	req := require.New(t)
	catalog := &mListing.CatalogUseCase{}
	sess := &mSession.SessionUseCase{}
	var hook func()
	sess.On("OnInvalidate", mock.Anything).Run(func(args mock.Arguments) {
		hook = args.Get(0).(func())
	}).Once()

	u := New(&HomeUseCaseCfg{Catalog: catalog, Session: sess})
	req.NotNil(hook)
	req.False(u.State().Fetched)

	items := []listing.Listing{{TokenID: "1", Price: "0.5", Name: "Sunset"}}
	catalog.On("ListAll", mock.Anything).Return(&listing.CatalogResult{
		Items:  items,
		Faults: []listing.Fault{{TokenID: "2", Reason: "metadata fetch failed"}},
	}, nil).Once()

	st := u.Load(bCtx.Background())
	req.True(st.Fetched)
	req.False(st.Loading)
	req.Equal(items, st.Items)
	req.Len(st.Faults, 1)
	req.Nil(st.Notice)

	hook()
	req.False(u.State().Fetched)
	req.Empty(u.State().Items)
	catalog.AssertExpectations(t)
	sess.AssertExpectations(t)
}

func TestLoadFailure(t *testing.T) {
	req := require.New(t)
	catalog := &mListing.CatalogUseCase{}
	catalog.On("ListAll", mock.Anything).Return(nil, errors.New("dial tcp: connection refused")).Once()

	u := New(&HomeUseCaseCfg{Catalog: catalog})
	st := u.Load(bCtx.Background())
	req.False(st.Fetched)
	req.False(st.Loading)
	req.Equal(notify.Error(msgLoadFailed), st.Notice)
}

func TestLoadDiscardedAfterInvalidation(t *testing.T) {
	req := require.New(t)
	catalog := &mListing.CatalogUseCase{}
	sess := &mSession.SessionUseCase{}
	var hook func()
	sess.On("OnInvalidate", mock.Anything).Run(func(args mock.Arguments) {
		hook = args.Get(0).(func())
	}).Once()
	u := New(&HomeUseCaseCfg{Catalog: catalog, Session: sess})

	// the accounts change while the catalog is still loading
	catalog.On("ListAll", mock.Anything).Run(func(mock.Arguments) {
		hook()
	}).Return(&listing.CatalogResult{Items: []listing.Listing{{TokenID: "1"}}}, nil).Once()

	st := u.Load(bCtx.Background())
	req.False(st.Fetched)
	req.False(st.Loading)
	req.Empty(st.Items)
	req.Equal(st, u.State())
	catalog.AssertExpectations(t)
}

func TestConnectResetsLoadedHome(t *testing.T) {
	req := require.New(t)
	catalog := &mListing.CatalogUseCase{}
	w := wallettest.Locked(string(session.Sepolia().ChainIdHex), "0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	sess := sessionUsecase.New(&sessionUsecase.SessionUseCaseCfg{Provider: w, Network: session.Sepolia()})
	u := New(&HomeUseCaseCfg{Catalog: catalog, Session: sess})

	catalog.On("ListAll", mock.Anything).Return(&listing.CatalogResult{Items: []listing.Listing{{TokenID: "1"}}}, nil).Twice()
	req.True(u.Load(bCtx.Background()).Fetched)

	_, err := sess.Connect(bCtx.Background())
	req.NoError(err)
	req.False(u.State().Fetched)
	req.Empty(u.State().Items)

	req.Len(u.Load(bCtx.Background()).Items, 1)
	catalog.AssertExpectations(t)
}
