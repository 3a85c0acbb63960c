package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryFormValidation(t *testing.T) {
	form := InquiryForm{Name: "Jane", Email: "jane@co.com", Message: "Need a quote"}
	assert.Empty(t, form.Validate())

	form = InquiryForm{Name: "Jane", Message: "Need a quote"}
	errs := form.Validate()
	assert.Contains(t, errs, "email")

	form = InquiryForm{Name: "Jane", Email: "not-an-email", Message: "hi"}
	errs = form.Validate()
	assert.Contains(t, errs, "email")

	form = InquiryForm{Email: "jane@co.com"}
	errs = form.Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "message")
}

func TestSubmitInquirySuccess(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/api/v1/inquiries", r.URL.Path)

		var envelope map[string]InquiryForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		assert.Equal(t, "Jane", envelope["data"].Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":1}}`))
	}))
	defer srv.Close()

	state := InquiryFormState{
		Form: InquiryForm{Name: "Jane", Email: "jane@co.com", Message: "Need a quote"},
	}
	state.Submit(context.Background(), NewClient(srv.URL))

	assert.True(t, state.Confirmed)
	assert.Empty(t, state.FieldErrors)
	assert.Empty(t, state.SubmitError)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSubmitInquiryValidationSkipsNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	state := InquiryFormState{
		Form: InquiryForm{Name: "Jane", Message: "Need a quote"},
	}
	state.Submit(context.Background(), NewClient(srv.URL))

	assert.False(t, state.Confirmed)
	assert.Contains(t, state.FieldErrors, "email")
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "validation failures must not hit the network")
}

func TestSubmitInquiryFailureKeepsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	form := InquiryForm{Name: "Jane", Email: "jane@co.com", Message: "Need a quote"}
	state := InquiryFormState{Form: form}
	state.Submit(context.Background(), NewClient(srv.URL))

	assert.False(t, state.Confirmed)
	assert.NotEmpty(t, state.SubmitError)
	assert.Equal(t, form, state.Form, "entered values survive a failed submission")
}
