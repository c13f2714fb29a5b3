package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/mocks"
	"github.com/x-xyz/chimera/service/cache"
	"github.com/x-xyz/chimera/service/cache/provider/primitive"
)

func Test_metadataUseCase_GetFromUrl(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		calledUrl string
		body      []byte
		fetchErr  error
		want      *domain.Metadata
		wantErr   error
	}{
		{
			name:      "gateway url",
			url:       "https://gateway.pinata.cloud/ipfs/QmMeta",
			calledUrl: "https://gateway.pinata.cloud/ipfs/QmMeta",
			body:      []byte(`{"name":"Sunset","description":"first light","price":"0.5","image":"https://gateway.pinata.cloud/ipfs/QmImage"}`),
			want: &domain.Metadata{
				Name:        "Sunset",
				Description: "first light",
				Price:       "0.5",
				Image:       "https://gateway.pinata.cloud/ipfs/QmImage",
			},
		},
		{
			name:      "scheme style uri and image",
			url:       "ipfs://QmMeta",
			calledUrl: "https://gateway.pinata.cloud/ipfs/QmMeta",
			body:      []byte(`{"name":"Dawn","description":"","image":"ipfs://QmImage/dawn.png"}`),
			want: &domain.Metadata{
				Name:  "Dawn",
				Image: "https://gateway.pinata.cloud/ipfs/QmImage/dawn.png",
			},
		},
		{
			name:      "fetch failure",
			url:       "https://example.com/gone",
			calledUrl: "https://example.com/gone",
			fetchErr:  errors.New("404"),
			wantErr:   domain.ErrMetadataFetchFailed,
		},
		{
			name:      "unexpected document",
			url:       "https://example.com/array",
			calledUrl: "https://example.com/array",
			body:      []byte(`[1,2]`),
			wantErr:   domain.ErrMetadataFetchFailed,
		},
		{
			name:    "empty uri",
			wantErr: domain.ErrMetadataFetchFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			webResource := &mocks.WebResourceUseCase{}
			if len(tt.calledUrl) > 0 {
				webResource.On("GetJson", mock.Anything, tt.calledUrl).Return(tt.body, tt.fetchErr).Once()
			}
			u := NewMetadataUseCase(&MetadataUseCaseCfg{
				CtxTimeout:  time.Second,
				WebResource: webResource,
			})

			got, err := u.GetFromUrl(bCtx.Background(), tt.url)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.Nil(got)
			} else {
				req.NoError(err)
				req.Equal(tt.want, got)
			}
			webResource.AssertExpectations(t)
		})
	}
}

func Test_metadataUseCase_GetFromUrlCached(t *testing.T) {
	req := require.New(t)
	url := "https://gateway.pinata.cloud/ipfs/QmMeta"
	webResource := &mocks.WebResourceUseCase{}
	webResource.On("GetJson", mock.Anything, url).
		Return([]byte(`{"name":"Sunset","description":"first light","image":"ipfs://QmImage"}`), nil).
		Once()
	u := NewMetadataUseCase(&MetadataUseCaseCfg{
		WebResource: webResource,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "test",
			Cache: primitive.NewPrimitive("metadata", 1),
		}),
	})

	for i := 0; i < 3; i++ {
		got, err := u.GetFromUrl(bCtx.Background(), url)
		req.NoError(err)
		req.Equal("Sunset", got.Name)
		req.Equal("https://gateway.pinata.cloud/ipfs/QmImage", got.Image)
	}
	webResource.AssertNumberOfCalls(t, "GetJson", 1)
}
