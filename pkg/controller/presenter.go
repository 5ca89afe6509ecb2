package controller

import "github.com/goliatone/go-formctl/pkg/model"

// BannerKind distinguishes success and failure banners.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerFailure BannerKind = "failure"
)

// Banner messages shown after a submission.
const (
	MessageSubmitted    = "Form submitted successfully!"
	MessageSubmitFailed = "Error submitting form. Please try again."
)

// Banner is a transient top-of-page message.
type Banner struct {
	Kind    BannerKind `json:"kind"`
	Message string     `json:"message"`
}

// Presenter renders feedback. Implementations receive field snapshots and
// must not call back into the Controller.
type Presenter interface {
	SetFieldError(field model.Field, message string)
	ClearFieldError(field model.Field)
	ShowBanner(banner Banner)
	HideBanner()
	SetLoading(loading bool)
}

// FormResetter is implemented by presenters that mirror field values, so a
// successful submission's reset becomes visible.
type FormResetter interface {
	ResetForm(fields []model.Field)
}

type nopPresenter struct{}

func (nopPresenter) SetFieldError(model.Field, string) {}
func (nopPresenter) ClearFieldError(model.Field)       {}
func (nopPresenter) ShowBanner(Banner)                 {}
func (nopPresenter) HideBanner()                       {}
func (nopPresenter) SetLoading(bool)                   {}
