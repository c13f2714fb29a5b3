package usecase

import (
	"errors"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/base/ethunit"
	"github.com/x-xyz/chimera/base/log"
	bValidator "github.com/x-xyz/chimera/base/validator"
	"github.com/x-xyz/chimera/domain"
	"github.com/x-xyz/chimera/domain/listing"
	"github.com/x-xyz/chimera/domain/notify"
	"github.com/x-xyz/chimera/domain/session"
	"github.com/x-xyz/chimera/service/pinata"
)

const (
	MsgFillAllFields   = "Please fill all the fields!"
	MsgInvalidPrice    = "Price must be a positive amount in ETH with at most 18 decimals."
	MsgUploadingImage  = "Uploading image to IPFS..."
	MsgImageUploaded   = "Image uploaded successfully!"
	MsgImageFailed     = "Error uploading image to IPFS, check console for more details."
	MsgMetadataFailed  = "Error uploading JSON metadata, check console for more details."
	MsgSubmitting      = "Uploading NFT, please wait!"
	MsgListed          = "NFT listed successfully!"
	MsgListFailed      = "Error listing NFT, check console for more details."
	imageUploadName    = "nftimage"
	metadataUploadName = "nftmetadata"
	uploadIdKey        = "uploadId"
)

type FormUseCaseCfg struct {
	Pinata   pinata.Service
	Session  session.SessionUseCase
	Gateway  listing.Gateway
	Validate *validator.Validate
}

type formUseCase struct {
	pinata   pinata.Service
	session  session.SessionUseCase
	gateway  listing.Gateway
	validate *validator.Validate

	mu    sync.Mutex
	state listing.FormState
	// gen changes on every reset so late results of an abandoned form are discarded
	gen int
}

func NewFormUseCase(cfg *FormUseCaseCfg) listing.FormUseCase {
	v := cfg.Validate
	if v == nil {
		v = bValidator.New()
	}
	u := &formUseCase{
		pinata:   cfg.Pinata,
		session:  cfg.Session,
		gateway:  cfg.Gateway,
		validate: v,
	}
	cfg.Session.OnInvalidate(u.Reset)
	return u
}

func (u *formUseCase) State() listing.FormState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *formUseCase) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = listing.FormState{}
	u.gen++
}

func (u *formUseCase) SetField(field listing.Field, value string) (listing.FormState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	switch field {
	case listing.FieldName:
		u.state.Form.Name = value
	case listing.FieldDescription:
		u.state.Form.Description = value
	case listing.FieldPrice:
		u.state.Form.Price = value
	default:
		return u.state, xerrors.Errorf("unknown field %q: %w", field, domain.ErrBadParamInput)
	}
	return u.state, nil
}

// begin marks the form busy with msg, it fails when another operation is in flight
func (u *formUseCase) begin(msg string) (int, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state.Busy {
		return 0, false
	}
	u.state.Busy = true
	u.state.Message = msg
	u.state.Notice = nil
	return u.gen, true
}

// finish applies update unless the form was reset meanwhile
func (u *formUseCase) finish(gen int, update func(*listing.FormState)) listing.FormState {
	u.mu.Lock()
	defer u.mu.Unlock()
	if gen != u.gen {
		return u.state
	}
	u.state.Busy = false
	update(&u.state)
	return u.state
}

func (u *formUseCase) UploadImage(c bCtx.Ctx, image io.Reader, filename string) listing.FormState {
	gen, ok := u.begin(MsgUploadingImage)
	if !ok {
		return u.State()
	}
	u.mu.Lock()
	u.state.Form.ImageURL = ""
	u.mu.Unlock()

	uploadId := uuid.NewString()
	c = bCtx.WithValue(c, uploadIdKey, uploadId)
	res := u.pinata.UploadFile(c, image, filename, pinata.WithMetadata(pinata.PinataMetadata{
		Name:      imageUploadName,
		KeyValues: map[string]interface{}{uploadIdKey: uploadId},
	}))
	return u.finish(gen, func(st *listing.FormState) {
		if !res.Ok() {
			c.WithField("err", res.ErrorMessage).Error("pinata.UploadFile failed")
			st.Message = MsgImageFailed
			return
		}
		st.Form.ImageURL = res.URL
		st.Message = MsgImageUploaded
	})
}

func (u *formUseCase) Submit(c bCtx.Ctx) listing.FormState {
	u.mu.Lock()
	form := u.state.Form
	u.mu.Unlock()

	if err := u.validate.Struct(&form); err != nil {
		u.mu.Lock()
		defer u.mu.Unlock()
		u.state.Message = validationMessage(err)
		return u.state
	}

	gen, ok := u.begin("")
	if !ok {
		return u.State()
	}

	uploadId := uuid.NewString()
	c = bCtx.WithValue(c, uploadIdKey, uploadId)
	metadataURL, err := u.uploadMetadata(c, form, uploadId)
	if err != nil {
		return u.finish(gen, func(st *listing.FormState) {
			st.Message = MsgMetadataFailed
		})
	}

	gen, err = u.connect(c, gen, form)
	if err != nil {
		c.WithField("err", err).Error("session.Connect failed")
		return u.finish(gen, func(st *listing.FormState) {
			st.Message = ""
			st.Notice = notify.FromError(err, MsgListFailed)
		})
	}

	// from here on the outcome is reported even when the session changes meanwhile
	if err := u.list(c, metadataURL, form.Price); err != nil {
		c.WithField("err", err).Error("listing failed")
		return u.settle(gen, notify.FromError(err, MsgListFailed), false)
	}
	return u.settle(gen, notify.Success(MsgListed), true)
}

// connect ensures a session for the submission of form. A fresh connection resets the
// form, the submission then carries on under the new generation with the submitted fields.
func (u *formUseCase) connect(c bCtx.Ctx, gen int, form listing.Form) (int, error) {
	_, err := u.session.Connect(c)

	u.mu.Lock()
	defer u.mu.Unlock()
	if gen != u.gen {
		if u.state.Busy {
			return gen, xerrors.Errorf("form reused while connecting: %w", domain.ErrRequestAlreadyPending)
		}
		gen = u.gen
		u.state.Form = form
		u.state.Busy = true
	}
	if err != nil {
		return gen, err
	}
	u.state.Message = MsgSubmitting
	return gen, nil
}

// settle reports the outcome of a submitted listing. The notice is always kept, the rest
// of the state only changes when the form was not reset since gen was taken.
func (u *formUseCase) settle(gen int, n *notify.Notification, clear bool) listing.FormState {
	u.mu.Lock()
	defer u.mu.Unlock()
	if gen == u.gen {
		u.state.Busy = false
		u.state.Message = ""
		if clear {
			u.state.Form = listing.Form{}
		}
	}
	u.state.Notice = n
	return u.state
}

func (u *formUseCase) uploadMetadata(c bCtx.Ctx, form listing.Form, uploadId string) (string, error) {
	doc := domain.Metadata{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Image:       form.ImageURL,
	}
	res := u.pinata.UploadJSON(c, doc, pinata.WithMetadata(pinata.PinataMetadata{
		Name:      metadataUploadName,
		KeyValues: map[string]interface{}{uploadIdKey: uploadId},
	}))
	if !res.Ok() {
		c.WithField("err", res.ErrorMessage).Error("pinata.UploadJSON failed")
		return "", res.Err()
	}
	return res.URL, nil
}

// list submits the listing of an uploaded metadata document and waits for it to be mined
func (u *formUseCase) list(c bCtx.Ctx, metadataURL, price string) error {
	priceWei, err := ethunit.ToWei(price)
	if err != nil {
		return err
	}
	// the fee may change between reads, it is fetched right before submitting
	fee, err := u.gateway.GetListingPrice(c)
	if err != nil {
		c.WithField("err", err).Error("gateway.GetListingPrice failed")
		return err
	}
	tx, err := u.gateway.CreateListing(c, metadataURL, priceWei, fee)
	if err != nil {
		c.WithField("err", err).Error("gateway.CreateListing failed")
		return err
	}
	c.WithFields(log.Fields{"hash": tx.Hash(), "metadata": metadataURL}).Info("listing submitted")
	return tx.Wait(c)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MsgFillAllFields
	}
	for _, e := range verrs {
		if e.Tag() == "required" {
			return MsgFillAllFields
		}
	}
	return MsgInvalidPrice
}
