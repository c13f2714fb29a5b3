package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/mocks"
)

var doc = []byte(`{"name":"Sunset","description":"first light","price":"0.5","image":"https://gateway.pinata.cloud/ipfs/QmImage"}`)

func Test_webResourceUseCase_Get(t *testing.T) {
	errFetch := errors.New("connection reset")
	tests := []struct {
		name      string
		url       string
		withIpfs  bool
		httpCalls map[string][]interface{}
		ipfsCalls map[string][]interface{}
		want      []byte
		wantErr   error
	}{
		{
			name:      "https",
			url:       "https://example.com/meta.json",
			httpCalls: map[string][]interface{}{"https://example.com/meta.json": {doc, nil}},
			want:      doc,
		},
		{
			name:      "ipfs scheme through gateway",
			url:       "ipfs://QmMeta/0.json",
			httpCalls: map[string][]interface{}{"https://gateway.pinata.cloud/ipfs/QmMeta/0.json": {doc, nil}},
			want:      doc,
		},
		{
			name:      "legacy ipfs scheme through node",
			url:       "ipfs://ipfs/QmMeta",
			withIpfs:  true,
			ipfsCalls: map[string][]interface{}{"QmMeta": {doc, nil}},
			want:      doc,
		},
		{
			name:      "gateway failure falls back to node",
			url:       "https://gateway.pinata.cloud/ipfs/QmMeta",
			withIpfs:  true,
			httpCalls: map[string][]interface{}{"https://gateway.pinata.cloud/ipfs/QmMeta": {nil, errFetch}},
			ipfsCalls: map[string][]interface{}{"QmMeta": {doc, nil}},
			want:      doc,
		},
		{
			name:      "fallback failure reports the original error",
			url:       "https://acme.mypinata.cloud/ipfs/QmMeta",
			withIpfs:  true,
			httpCalls: map[string][]interface{}{"https://acme.mypinata.cloud/ipfs/QmMeta": {nil, errFetch}},
			ipfsCalls: map[string][]interface{}{"QmMeta": {nil, errors.New("timeout")}},
			wantErr:   errFetch,
		},
		{
			name:      "no fallback off gateway",
			url:       "https://example.com/meta.json",
			withIpfs:  true,
			httpCalls: map[string][]interface{}{"https://example.com/meta.json": {nil, errFetch}},
			wantErr:   errFetch,
		},
		{
			name:    "unsupported schema",
			url:     "ar://abc",
			wantErr: domain.ErrUnsupportedSchema,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			httpReader := &mocks.WebResourceReaderRepository{}
			for url, ret := range tt.httpCalls {
				httpReader.On("Get", mock.Anything, url).Return(ret...).Once()
			}
			cfg := &WebResourceUseCaseCfg{HttpReader: httpReader}
			ipfsReader := &mocks.WebResourceReaderRepository{}
			if tt.withIpfs {
				for cid, ret := range tt.ipfsCalls {
					ipfsReader.On("Get", mock.Anything, cid).Return(ret...).Once()
				}
				cfg.IpfsReader = ipfsReader
			}
			u := NewWebResourceUseCase(cfg)

			got, err := u.Get(bCtx.Background(), tt.url)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
			} else {
				req.NoError(err)
				req.Equal(tt.want, got)
			}
			httpReader.AssertExpectations(t)
			ipfsReader.AssertExpectations(t)
		})
	}
}

func Test_webResourceUseCase_GetJson(t *testing.T) {
	req := require.New(t)
	httpReader := &mocks.WebResourceReaderRepository{}
	httpReader.On("Get", mock.Anything, "https://example.com/ok").Return(doc, nil)
	httpReader.On("Get", mock.Anything, "https://example.com/html").Return([]byte("<html>"), nil)
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{HttpReader: httpReader, Gateway: "https://ipfs.io/ipfs"})

	got, err := u.GetJson(bCtx.Background(), "https://example.com/ok")
	req.NoError(err)
	req.Equal(doc, got)

	_, err = u.GetJson(bCtx.Background(), "https://example.com/html")
	req.ErrorIs(err, domain.ErrInvalidJsonFormat)
}
