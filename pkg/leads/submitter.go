// Package leads submits leads, viewing requests and newsletter subscriptions to the CRM.
// Failed lead and subscription submissions are appended to a local durable log.
package leads

import (
	"context"
	"errors"
	"html"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/realtor/pkg/crm"
	"github.com/umputun/realtor/pkg/domain"
)

//go:generate moq -out mocks/poster.go -pkg mocks -skip-ensure -fmt goimports . Poster

// local log keys
const (
	LeadsKey         = "leads"
	SubscriptionsKey = "newsletterSubscriptions"
)

var errNoCRM = errors.New("crm is not configured")

// timestampLayout matches ISO-8601 UTC with milliseconds
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Poster sends a JSON body to the CRM and returns parsed JSON response
type Poster interface {
	Post(ctx context.Context, path string, body any) (any, error)
}

// Log is an append-only durable log
type Log interface {
	Append(ctx context.Context, key string, record any) error
}

// Submitter delivers form submissions to the CRM with local fallback
type Submitter struct {
	poster   Poster
	log      Log
	sanitize *bluemonday.Policy
	now      func() time.Time
}

// NewSubmitter makes a submitter. Nil poster means CRM is not configured and everything goes to the log.
func NewSubmitter(poster Poster, log Log) *Submitter {
	return &Submitter{
		poster:   poster,
		log:      log,
		sanitize: bluemonday.StrictPolicy(),
		now:      time.Now,
	}
}

// SubmitLead sends arbitrary form fields as a lead, storing them locally on failure
func (s *Submitter) SubmitLead(ctx context.Context, fields map[string]string) domain.SubmitResult {
	clean := make(map[string]string, len(fields))
	for k, v := range fields {
		clean[k] = s.clean(v)
	}

	resp, err := s.post(ctx, crm.PathLeads, clean)
	if err == nil {
		return domain.SubmitResult{Delivered: true, Response: resp}
	}
	lgr.Printf("[WARN] can't submit lead, storing locally: %v", err)

	record := make(map[string]any, len(clean)+1)
	for k, v := range clean {
		record[k] = v
	}
	record["timestamp"] = s.timestamp()
	return domain.SubmitResult{Stored: s.store(ctx, LeadsKey, record)}
}

// Subscribe subscribes email to the newsletter with optional filters, storing locally on failure
func (s *Submitter) Subscribe(ctx context.Context, email string, filters domain.FilterCriteria) domain.SubmitResult {
	sub := domain.Subscription{Email: s.clean(email), Filters: filters}
	sub.Filters.Location = s.clean(filters.Location)

	resp, err := s.post(ctx, crm.PathNewsletter, sub)
	if err == nil {
		return domain.SubmitResult{Delivered: true, Response: resp}
	}
	lgr.Printf("[WARN] can't subscribe %s to newsletter, storing locally: %v", sub.Email, err)

	record := struct {
		domain.Subscription
		Timestamp string `json:"timestamp"`
	}{Subscription: sub, Timestamp: s.timestamp()}
	return domain.SubmitResult{Stored: s.store(ctx, SubscriptionsKey, record)}
}

// ScheduleViewing requests a viewing, failures are only logged
func (s *Submitter) ScheduleViewing(ctx context.Context, v domain.Viewing) domain.SubmitResult {
	v.DateTime = s.clean(v.DateTime)
	v.ContactInfo = s.clean(v.ContactInfo)

	resp, err := s.post(ctx, crm.PathViewings, v)
	if err != nil {
		lgr.Printf("[WARN] can't schedule viewing for listing %d: %v", v.PropertyID, err)
		return domain.SubmitResult{}
	}
	return domain.SubmitResult{Delivered: true, Response: resp}
}

func (s *Submitter) post(ctx context.Context, path string, body any) (any, error) {
	if s.poster == nil {
		return nil, errNoCRM
	}
	return s.poster.Post(ctx, path, body)
}

// store appends record to the local log, reports success
func (s *Submitter) store(ctx context.Context, key string, record any) bool {
	if s.log == nil {
		lgr.Printf("[WARN] no local log, %s record dropped", key)
		return false
	}
	if err := s.log.Append(ctx, key, record); err != nil {
		lgr.Printf("[WARN] can't store %s record locally, dropped: %v", key, err)
		return false
	}
	return true
}

// clean strips markup, entities escaped by the policy are restored to plain text
func (s *Submitter) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitize.Sanitize(v)))
}

func (s *Submitter) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}
