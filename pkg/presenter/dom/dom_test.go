package dom_test

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/benbjohnson/clock"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/htmlform"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/presenter/dom"
	"github.com/goliatone/go-formctl/pkg/submit"
	"github.com/goliatone/go-formctl/pkg/validation"
)

const page = `<html><body>
<form id="referralForm">
  <div class="form-group">
    <label for="email">Email</label>
    <div class="input-wrapper"><input id="email" name="email" type="email" required value="nope"></div>
    <div class="error-message"></div>
  </div>
  <div class="form-group" id="source-group">
    <label><input type="radio" name="source" value="friend"> Friend</label>
    <label><input type="radio" name="source" value="ad"> Ad</label>
    <div class="error-message"></div>
  </div>
  <div class="consent-checkbox">
    <label><input type="checkbox" name="consent"> I accept</label>
    <div class="error-message"></div>
  </div>
</form>
</body></html>`

func newPresenter(t *testing.T) *dom.Presenter {
	t.Helper()
	p, err := dom.Parse(strings.NewReader(page), "referralForm")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return p
}

func TestTextFieldError(t *testing.T) {
	p := newPresenter(t)
	field := model.Field{Name: "email", Type: model.FieldTypeEmail}

	p.SetFieldError(field, validation.MessageEmail)
	doc := p.Document()
	wrapper := doc.Find("#email").Closest(".input-wrapper")
	errorDiv := doc.Find("#email").Closest(".form-group").Find(".error-message")
	if !wrapper.HasClass("error") {
		t.Fatalf("expected wrapper to carry the error class")
	}
	if errorDiv.Text() != validation.MessageEmail || !errorDiv.HasClass("visible") {
		t.Fatalf("unexpected error node %q visible=%v", errorDiv.Text(), errorDiv.HasClass("visible"))
	}

	p.ClearFieldError(field)
	if wrapper.HasClass("error") || errorDiv.HasClass("visible") || errorDiv.Text() != "" {
		t.Fatalf("expected error state to be cleared")
	}
}

func TestRadioGroupErrorUsesInlineDisplay(t *testing.T) {
	p := newPresenter(t)
	field := model.Field{Name: "source", Type: model.FieldTypeRadio, Value: "ad"}

	p.SetFieldError(field, validation.MessageSelectOption)
	errorDiv := p.Document().Find("#source-group .error-message")
	if errorDiv.Text() != validation.MessageSelectOption {
		t.Fatalf("unexpected radio error text %q", errorDiv.Text())
	}
	if style := errorDiv.AttrOr("style", ""); style != "display: block" {
		t.Fatalf("unexpected style %q", style)
	}
	if errorDiv.HasClass("visible") {
		t.Fatalf("radio errors must not use the visible class")
	}

	p.ClearFieldError(field)
	if style := errorDiv.AttrOr("style", ""); style != "display: none" {
		t.Fatalf("unexpected style after clear %q", style)
	}
}

func TestCheckboxError(t *testing.T) {
	p := newPresenter(t)
	field := model.Field{Name: "consent", Type: model.FieldTypeCheckbox}

	p.SetFieldError(field, validation.MessageAcceptTerms)
	consent := p.Document().Find(".consent-checkbox")
	errorDiv := consent.Find(".error-message")
	if !consent.HasClass("error") || errorDiv.Text() != validation.MessageAcceptTerms {
		t.Fatalf("unexpected checkbox error state")
	}
	if errorDiv.AttrOr("style", "") != "display: block" {
		t.Fatalf("expected inline display block")
	}

	p.ClearFieldError(field)
	if consent.HasClass("error") || errorDiv.AttrOr("style", "") != "display: none" {
		t.Fatalf("expected checkbox error to clear")
	}
}

func TestChromeBannerAndLoading(t *testing.T) {
	p := newPresenter(t)
	if err := p.EnsureChrome(); err != nil {
		t.Fatalf("ensure chrome: %v", err)
	}
	if err := p.EnsureChrome(); err != nil {
		t.Fatalf("ensure chrome twice: %v", err)
	}
	if n := p.Document().Find(".loading-spinner").Length(); n != 1 {
		t.Fatalf("expected exactly one spinner, got %d", n)
	}

	p.SetLoading(true)
	if !p.Loading() {
		t.Fatalf("expected spinner to be displayed")
	}
	p.SetLoading(false)
	if p.Loading() {
		t.Fatalf("expected spinner to be hidden")
	}

	p.ShowBanner(controller.Banner{Kind: controller.BannerFailure, Message: controller.MessageSubmitFailed})
	text, classes, visible := p.BannerState()
	if text != controller.MessageSubmitFailed || classes != "feedback-message feedback-error" || !visible {
		t.Fatalf("unexpected banner state %q %q %v", text, classes, visible)
	}

	p.ShowBanner(controller.Banner{Kind: controller.BannerSuccess, Message: controller.MessageSubmitted})
	if _, classes, _ := p.BannerState(); classes != "feedback-message feedback-success" {
		t.Fatalf("unexpected success classes %q", classes)
	}

	p.HideBanner()
	if _, _, visible := p.BannerState(); visible {
		t.Fatalf("expected banner to be hidden")
	}
}

type okSubmitter struct{}

func (okSubmitter) Submit(context.Context, model.Payload) (submit.Response, error) {
	return submit.Response{Status: submit.StatusSuccess}, nil
}

func TestControllerDrivesDocument(t *testing.T) {
	p := newPresenter(t)
	if err := p.EnsureChrome(); err != nil {
		t.Fatalf("ensure chrome: %v", err)
	}
	form, err := htmlform.FromDocument(p.Document(), "referralForm")
	if err != nil {
		t.Fatalf("discover fields: %v", err)
	}
	ctrl, err := controller.New(form, okSubmitter{},
		controller.WithPresenter(p),
		controller.WithClock(clock.NewMock()),
	)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	outcome, err := ctrl.Submit(context.Background())
	if err != nil || outcome.Result != controller.ResultInvalid {
		t.Fatalf("expected invalid outcome, got %+v %v", outcome, err)
	}
	if p.Document().Find(".error-message.visible").Length() != 1 {
		t.Fatalf("expected the email error to be visible")
	}

	if err := ctrl.Input("email", "ada@example.com"); err != nil {
		t.Fatalf("input: %v", err)
	}
	if _, err := ctrl.Choose("source", "friend"); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if err := ctrl.Check("consent", true); err != nil {
		t.Fatalf("check: %v", err)
	}

	outcome, err = ctrl.Submit(context.Background())
	if err != nil || outcome.Result != controller.ResultSucceeded {
		t.Fatalf("expected success, got %+v %v", outcome, err)
	}

	html, err := p.HTML()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if v := doc.Find("#email").AttrOr("value", "missing"); v != "" {
		t.Fatalf("expected email value to be reset, got %q", v)
	}
	if doc.Find("input[checked]").Length() != 0 {
		t.Fatalf("expected no checked inputs after reset")
	}
	if doc.Find(".feedback-message").Text() != controller.MessageSubmitted {
		t.Fatalf("expected success banner in markup")
	}
	if doc.Find(".error-message.visible").Length() != 0 {
		t.Fatalf("expected no visible errors after success")
	}
}
