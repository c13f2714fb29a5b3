package wallet

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

type fakeBackend struct {
	chainId *big.Int
	sent    []*types.Transaction
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) { return b.chainId, nil }
func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}
func (b *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1000000000), nil
}
func (b *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 90000, nil
}
func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.sent = append(b.sent, tx)
	return nil
}

func TestCode(t *testing.T) {
	code, ok := Code(xerrors.Errorf("wrapped: %w", &ProviderError{Code: CodeUserRejected}))
	require.True(t, ok)
	require.Equal(t, CodeUserRejected, code)

	_, ok = Code(xerrors.New("plain"))
	require.False(t, ok)
}

func TestKeyedProvider(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	backend := &fakeBackend{chainId: big.NewInt(11155111)}
	p, err := NewKeyed("0x"+testKey, backend)
	req.NoError(err)

	key, _ := crypto.HexToECDSA(testKey)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	var accounts []string
	req.NoError(p.Request(c, &accounts, MethodRequestAccounts))
	req.Equal([]string{addr.Hex()}, accounts)

	var chainId string
	req.NoError(p.Request(c, &chainId, MethodChainId))
	req.Equal("0xaa36a7", chainId)

	req.NoError(p.Request(c, nil, MethodSwitchChain, SwitchChainParams{ChainId: "0xaa36a7"}))

	err = p.Request(c, nil, MethodSwitchChain, SwitchChainParams{ChainId: "0x1"})
	code, ok := Code(err)
	req.True(ok)
	req.Equal(CodeUnrecognizedChain, code)

	_, ok = Code(p.Request(c, nil, MethodAddChain, AddChainParams{ChainId: "0x1"}))
	req.True(ok)

	to := common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	value := big.NewInt(500000000000000000)
	var hash string
	req.NoError(p.Request(c, &hash, MethodSendTransaction, TxArgs{
		From:  addr,
		To:    &to,
		Data:  hexutil.Bytes{0xde, 0xad},
		Value: (*hexutil.Big)(value),
	}))
	req.Len(backend.sent, 1)
	tx := backend.sent[0]
	req.Equal(tx.Hash().Hex(), hash)
	req.Equal(value, tx.Value())
	req.Equal(uint64(7), tx.Nonce())
	req.Equal(&to, tx.To())
	req.Equal([]byte{0xde, 0xad}, tx.Data())
	sender, err := types.Sender(types.LatestSignerForChainID(backend.chainId), tx)
	req.NoError(err)
	req.Equal(addr, sender)
}

func TestKeyedProviderRejectsForeignSender(t *testing.T) {
	p, err := NewKeyed(testKey, &fakeBackend{chainId: big.NewInt(1)})
	require.NoError(t, err)
	to := common.HexToAddress("0x1")
	err = p.Request(ctx.Background(), nil, MethodSendTransaction, TxArgs{From: common.HexToAddress("0x2"), To: &to})
	code, _ := Code(err)
	require.Equal(t, CodeUserRejected, code)
}

func TestNewKeyedInvalidKey(t *testing.T) {
	_, err := NewKeyed("nope", &fakeBackend{})
	require.Error(t, err)
}

func TestRPCProviderErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		msg := struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}{}
		json.Unmarshal(body, &msg)
		w.Header().Set("Content-Type", "application/json")
		if msg.Method == MethodChainId {
			w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(msg.ID) + `,"result":"0xaa36a7"}`))
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(msg.ID) + `,"error":{"code":4001,"message":"User rejected the request."}}`))
	}))
	defer server.Close()

	c := ctx.Background()
	p, err := NewRPC(c, server.URL)
	require.NoError(t, err)
	defer p.Close()

	var chainId string
	require.NoError(t, p.Request(c, &chainId, MethodChainId))
	require.Equal(t, "0xaa36a7", chainId)

	err = p.Request(c, nil, MethodRequestAccounts)
	code, ok := Code(err)
	require.True(t, ok)
	require.Equal(t, CodeUserRejected, code)
}

type scriptedAccounts struct {
	mu       sync.Mutex
	accounts []string
}

func (s *scriptedAccounts) set(a ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = a
}

func (s *scriptedAccounts) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*(result.(*[]string)) = append([]string{}, s.accounts...)
	return nil
}

func (s *scriptedAccounts) Close() {}

func TestAccountsWatcher(t *testing.T) {
	p := &scriptedAccounts{}
	p.set("0xAAA")

	changes := make(chan []domain.Address, 4)
	w := NewAccountsWatcher(p, 5*time.Millisecond)
	w.Start(ctx.Background(), func(a []domain.Address) { changes <- a })
	// second start is ignored
	w.Start(ctx.Background(), func(a []domain.Address) { t.Error("unexpected subscriber") })

	time.Sleep(30 * time.Millisecond)
	require.Len(t, changes, 0)

	p.set("0xBBB")
	select {
	case a := <-changes:
		require.Equal(t, []domain.Address{"0xBBB"}, a)
	case <-time.After(time.Second):
		t.Fatal("no change reported")
	}

	// same set in another case is not a change
	p.set("0xbbb")
	time.Sleep(30 * time.Millisecond)
	require.Len(t, changes, 0)

	w.Stop()
}

func TestDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{&ProviderError{Code: CodeUserRejected}, domain.ErrUserRejected},
		{&ProviderError{Code: CodeRequestPending}, domain.ErrRequestAlreadyPending},
		{&ProviderError{Code: CodeInternal}, domain.ErrTransactionFailed},
		{xerrors.New("connection refused"), domain.ErrTransactionFailed},
	}
	for _, tt := range tests {
		err := DomainError(MethodSendTransaction, tt.err, domain.ErrTransactionFailed)
		require.ErrorIs(t, err, tt.want)
		require.NotContains(t, err.Error(), "4001")
	}
}
