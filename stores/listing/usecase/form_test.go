package usecase

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	mListing "github.com/x-xyz/chimera/domain/listing/mocks"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/session"
	mSession "github.com/x-xyz/chimera/domain/session/mocks"
	mPinata "github.com/x-xyz/chimera/service/pinata/mocks"
)

const (
	imageURL    = "https://gateway.pinata.cloud/ipfs/QmImage"
	metadataURL = "https://gateway.pinata.cloud/ipfs/QmMeta"
)

var mockCtx = bCtx.Background()

func weiEq(s string) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.String() == s })
}

type formSuite struct {
	suite.Suite

	pinata     *mPinata.Service
	session    *mSession.SessionUseCase
	gateway    *mListing.Gateway
	tx         *mListing.Transaction
	invalidate func()
	im         listing.FormUseCase
}

func (s *formSuite) SetupTest() {
	s.pinata = &mPinata.Service{}
	s.session = &mSession.SessionUseCase{}
	s.gateway = &mListing.Gateway{}
	s.tx = &mListing.Transaction{}
	s.session.On("OnInvalidate", mock.Anything).Run(func(args mock.Arguments) {
		s.invalidate = args.Get(0).(func())
	}).Once()
	s.im = NewFormUseCase(&FormUseCaseCfg{
		Pinata:  s.pinata,
		Session: s.session,
		Gateway: s.gateway,
	})
}

func (s *formSuite) TearDownTest() {
	s.pinata.AssertExpectations(s.T())
	s.session.AssertExpectations(s.T())
	s.gateway.AssertExpectations(s.T())
	s.tx.AssertExpectations(s.T())
}

func TestFormSuite(t *testing.T) {
	suite.Run(t, new(formSuite))
}

func (s *formSuite) fill(name, description, price string) {
	_, err := s.im.SetField(listing.FieldName, name)
	s.Require().NoError(err)
	_, err = s.im.SetField(listing.FieldDescription, description)
	s.Require().NoError(err)
	_, err = s.im.SetField(listing.FieldPrice, price)
	s.Require().NoError(err)
}

func (s *formSuite) uploadImage() {
	s.pinata.On("UploadFile", mock.Anything, mock.Anything, "sunset.png", mock.Anything).
		Return(domain.UploadSucceeded(imageURL)).Once()
	st := s.im.UploadImage(mockCtx, bytes.NewReader([]byte("png")), "sunset.png")
	s.Require().Equal(imageURL, st.Form.ImageURL)
	s.Require().Equal(MsgImageUploaded, st.Message)
	s.Require().False(st.Busy)
}

func (s *formSuite) expectMetadata(price string, res domain.UploadResult) {
	s.pinata.On("UploadJSON", mock.Anything, domain.Metadata{
		Name:        "Sunset",
		Description: "first light",
		Price:       price,
		Image:       imageURL,
	}, mock.Anything).Return(res).Once()
}

func (s *formSuite) TestSubmitListsAndResets() {
	fee := big.NewInt(25000000000000000)
	s.fill("Sunset", "first light", "0.5")
	s.uploadImage()
	s.expectMetadata("0.5", domain.UploadSucceeded(metadataURL))
	s.session.On("Connect", mock.Anything).Return(session.Session{WalletPresent: true, ConnectedAddress: "0xabc"}, nil).Once()
	s.gateway.On("GetListingPrice", mock.Anything).Return(fee, nil).Once()
	s.gateway.On("CreateListing", mock.Anything, metadataURL, weiEq("500000000000000000"), fee).Return(s.tx, nil).Once()
	s.tx.On("Hash").Return(domain.TxHash("0x01"))
	s.tx.On("Wait", mock.Anything).Return(nil).Once()

	st := s.im.Submit(mockCtx)
	s.Equal(listing.Form{}, st.Form)
	s.Empty(st.Message)
	s.False(st.Busy)
	s.Equal(notify.Success(MsgListed), st.Notice)
}

func (s *formSuite) TestSubmitRequiresAllFields() {
	s.fill("Sunset", "", "0.5")
	st := s.im.Submit(mockCtx)
	s.Equal(MsgFillAllFields, st.Message)

	s.fill("Sunset", "first light", "0.5")
	st = s.im.Submit(mockCtx)
	s.Equal(MsgFillAllFields, st.Message, "image is required")
	s.Equal("Sunset", st.Form.Name)
}

func (s *formSuite) TestSubmitRejectsInvalidPrice() {
	s.uploadImage()
	for _, price := range []string{"0", "-1", "abc", "0.0000000000000000001"} {
		s.fill("Sunset", "first light", price)
		st := s.im.Submit(mockCtx)
		s.Equal(MsgInvalidPrice, st.Message, price)
	}
}

func (s *formSuite) TestMetadataUploadFailureKeepsForm() {
	s.fill("Sunset", "first light", "0.5")
	s.uploadImage()
	s.expectMetadata("0.5", domain.UploadFailed(errors.New("401 unauthorized")))

	st := s.im.Submit(mockCtx)
	s.Equal(MsgMetadataFailed, st.Message)
	s.False(st.Busy)
	s.Equal("Sunset", st.Form.Name)
	s.Equal(imageURL, st.Form.ImageURL)
	s.gateway.AssertNotCalled(s.T(), "CreateListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *formSuite) TestWalletRejectionNotifies() {
	s.fill("Sunset", "first light", "0.5")
	s.uploadImage()
	s.expectMetadata("0.5", domain.UploadSucceeded(metadataURL))
	s.session.On("Connect", mock.Anything).Return(session.Session{}, domain.ErrUserRejected).Once()

	st := s.im.Submit(mockCtx)
	s.Equal(notify.FromError(domain.ErrUserRejected, ""), st.Notice)
	s.Equal("Sunset", st.Form.Name)
	s.False(st.Busy)
}

func (s *formSuite) TestRevertedTransactionNotifies() {
	fee := big.NewInt(1)
	s.fill("Sunset", "first light", "1.25")
	s.uploadImage()
	s.expectMetadata("1.25", domain.UploadSucceeded(metadataURL))
	s.session.On("Connect", mock.Anything).Return(session.Session{ConnectedAddress: "0xabc"}, nil).Once()
	s.gateway.On("GetListingPrice", mock.Anything).Return(fee, nil).Once()
	s.gateway.On("CreateListing", mock.Anything, metadataURL, weiEq("1250000000000000000"), fee).Return(s.tx, nil).Once()
	s.tx.On("Hash").Return(domain.TxHash("0x02"))
	s.tx.On("Wait", mock.Anything).Return(domain.ErrTransactionFailed).Once()

	st := s.im.Submit(mockCtx)
	s.Equal(notify.Error(MsgListFailed), st.Notice)
	s.Equal("1.25", st.Form.Price)
}

func (s *formSuite) TestImageUploadFailure() {
	s.pinata.On("UploadFile", mock.Anything, mock.Anything, "broken.png", mock.Anything).
		Return(domain.UploadFailed(errors.New("413"))).Once()

	st := s.im.UploadImage(mockCtx, bytes.NewReader(nil), "broken.png")
	s.Equal(MsgImageFailed, st.Message)
	s.Empty(st.Form.ImageURL)
	s.False(st.Busy)
}

func (s *formSuite) TestUnknownField() {
	_, err := s.im.SetField("color", "red")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *formSuite) TestInvalidationResets() {
	s.fill("Sunset", "first light", "0.5")
	s.Require().NotNil(s.invalidate)
	s.invalidate()
	s.Equal(listing.FormState{}, s.im.State())
}

func (s *formSuite) TestAccountChangeWhileMiningKeepsOutcome() {
	tests := []struct {
		desc    string
		waitErr error
		want    *notify.Notification
	}{
		{"mined", nil, notify.Success(MsgListed)},
		{"reverted", domain.ErrTransactionFailed, notify.Error(MsgListFailed)},
	}
	for _, tt := range tests {
		s.Run(tt.desc, func() {
			s.SetupTest()
			fee := big.NewInt(1)
			s.fill("Sunset", "first light", "0.5")
			s.uploadImage()
			s.expectMetadata("0.5", domain.UploadSucceeded(metadataURL))
			s.session.On("Connect", mock.Anything).Return(session.Session{ConnectedAddress: "0xabc"}, nil).Once()
			s.gateway.On("GetListingPrice", mock.Anything).Return(fee, nil).Once()
			s.gateway.On("CreateListing", mock.Anything, metadataURL, weiEq("500000000000000000"), fee).Return(s.tx, nil).Once()
			s.tx.On("Hash").Return(domain.TxHash("0x03"))
			s.tx.On("Wait", mock.Anything).Run(func(mock.Arguments) { s.invalidate() }).Return(tt.waitErr).Once()

			st := s.im.Submit(mockCtx)
			s.Equal(tt.want, st.Notice)
			s.False(st.Busy)
			s.Equal(listing.Form{}, st.Form)
			s.TearDownTest()
		})
	}
}
