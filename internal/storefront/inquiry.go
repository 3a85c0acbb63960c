package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
)

// InquiryForm carries the inquiry fields as entered by the visitor
type InquiryForm struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	Message     string `json:"message"`
	ProductSlug string `json:"product_slug,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	TargetPrice string `json:"target_price,omitempty"`
}

// FieldErrors maps field names to validation messages
type FieldErrors map[string]string

// Validate runs the client-side checks: required name/email/message and a
// parseable email address. It never touches the network.
func (f *InquiryForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "Email is not valid"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// SubmitInquiry posts the form to the inquiry endpoint. A non-2xx reply or
// transport failure comes back as an error; there is no automatic retry.
func (c *Client) SubmitInquiry(ctx context.Context, form InquiryForm) error {
	payload, err := json.Marshal(map[string]InquiryForm{"data": form})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/inquiries", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("inquiry submission failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("inquiry rejected with status %d", resp.StatusCode)
	}
	return nil
}

// InquiryFormState models the form's UI lifecycle: editing with inline
// errors, or confirmed after a successful submission. Failed submissions
// keep the entered values so the visitor can retry.
type InquiryFormState struct {
	Form        InquiryForm
	FieldErrors FieldErrors
	SubmitError string
	Confirmed   bool
}

// Submit validates locally, then forwards to the content store. Validation
// failures never reach the network.
func (s *InquiryFormState) Submit(ctx context.Context, client *Client) {
	s.SubmitError = ""

	if errs := s.Form.Validate(); len(errs) > 0 {
		s.FieldErrors = errs
		return
	}
	s.FieldErrors = FieldErrors{}

	if err := client.SubmitInquiry(ctx, s.Form); err != nil {
		s.SubmitError = "Could not send your inquiry. Please try again."
		return
	}

	s.Confirmed = true
}
