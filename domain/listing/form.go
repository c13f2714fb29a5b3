package listing

import (
	"io"

	"github.com/x-xyz/chimera/base/ctx"
	"github.com/x-xyz/chimera/domain/notify"
)

type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
)

// Form is the create listing form. ImageURL is only set by a successful image upload.
type Form struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required,eth_amount"`
	ImageURL    string `json:"imageUrl" validate:"required"`
}

type FormState struct {
	Form Form `json:"form"`
	// Message is the inline status shown below the form
	Message string `json:"message"`
	// Busy is set while an upload or a submission is in flight, the form cannot be submitted
	Busy   bool                 `json:"busy"`
	Notice *notify.Notification `json:"notice,omitempty"`
}

// FormUseCase drives the create listing form. Failures end up in the returned state.
type FormUseCase interface {
	SetField(field Field, value string) (FormState, error)
	UploadImage(c ctx.Ctx, image io.Reader, filename string) FormState
	Submit(c ctx.Ctx) FormState
	State() FormState
	Reset()
}
