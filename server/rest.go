package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/realtor/pkg/domain"
)

// acknowledgment messages shown to the visitor after the CRM accepted a submission
const (
	msgLeadAccepted       = "Мы скоро вам перезвоним!"
	msgSubscribeAccepted  = "Спасибо за подписку!"
	msgViewingScheduled   = "Вы записаны на просмотр"
	msgSubmissionReceived = "Заявка сохранена"
)

// listingView is a listing enriched with the visitor's favorite flag
type listingView struct {
	domain.Listing
	Favorite bool `json:"favorite"`
}

type submitResponse struct {
	Delivered bool   `json:"delivered"`
	Stored    bool   `json:"stored"`
	Message   string `json:"message,omitempty"`
}

type favoritesResponse struct {
	IDs      []int64 `json:"ids"`
	Count    int     `json:"count"`
	Favorite *bool   `json:"favorite,omitempty"`
}

type newsletterRequest struct {
	Email   string                `json:"email"`
	Filters domain.FilterCriteria `json:"filters"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"favorites": s.favorites.Count(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// featuredHandler returns featured listings, demo ones if the CRM is unavailable
func (s *Server) featuredHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.withFavorites(s.listings.FetchFeatured(r.Context())))
}

// searchHandler searches listings with criteria from JSON body, empty body means no criteria
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	var criteria domain.FilterCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil && !errors.Is(err, io.EOF) {
		renderError(w, r, fmt.Errorf("invalid search criteria: %w", err), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.withFavorites(s.listings.Search(r.Context(), criteria)))
}

// searchQueryHandler searches listings with criteria from query string
func (s *Server) searchQueryHandler(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.withFavorites(s.listings.Search(r.Context(), criteria)))
}

// favoritesHandler returns the favorites set
func (s *Server) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	ids := s.favorites.IDs()
	if ids == nil {
		ids = []int64{}
	}
	renderJSON(w, r, http.StatusOK, favoritesResponse{IDs: ids, Count: len(ids)})
}

// isFavoriteHandler reports whether a single listing is marked favorite
func (s *Server) isFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "favorite": s.favorites.IsFavorite(id)})
}

// toggleFavoriteHandler adds the listing to favorites or removes it
func (s *Server) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	ids := s.favorites.Toggle(r.Context(), id)
	if ids == nil {
		ids = []int64{}
	}
	favorite := false
	for _, v := range ids {
		if v == id {
			favorite = true
			break
		}
	}
	renderJSON(w, r, http.StatusOK, favoritesResponse{IDs: ids, Count: len(ids), Favorite: &favorite})
}

// leadHandler accepts a contact form, either JSON object of strings or form-encoded
func (s *Server) leadHandler(w http.ResponseWriter, r *http.Request) {
	fields, err := leadFields(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if len(fields) == 0 {
		renderError(w, r, errors.New("empty lead"), http.StatusBadRequest)
		return
	}

	res := s.leads.SubmitLead(r.Context(), fields)
	renderJSON(w, r, http.StatusOK, toSubmitResponse(res, msgLeadAccepted))
}

// viewingHandler schedules a viewing of a listing
func (s *Server) viewingHandler(w http.ResponseWriter, r *http.Request) {
	var v domain.Viewing
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		renderError(w, r, fmt.Errorf("invalid viewing request: %w", err), http.StatusBadRequest)
		return
	}
	if v.PropertyID <= 0 {
		renderError(w, r, errors.New("propertyId is required"), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(v.ContactInfo) == "" {
		renderError(w, r, errors.New("contactInfo is required"), http.StatusBadRequest)
		return
	}

	res := s.leads.ScheduleViewing(r.Context(), v)
	renderJSON(w, r, http.StatusOK, toSubmitResponse(res, msgViewingScheduled))
}

// newsletterHandler subscribes an email to listings matching filters
func (s *Server) newsletterHandler(w http.ResponseWriter, r *http.Request) {
	var req newsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid subscription request: %w", err), http.StatusBadRequest)
		return
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid email %q", req.Email), http.StatusBadRequest)
		return
	}

	res := s.leads.Subscribe(r.Context(), addr.Address, req.Filters)
	renderJSON(w, r, http.StatusOK, toSubmitResponse(res, msgSubscribeAccepted))
}

func (s *Server) withFavorites(listings []domain.Listing) []listingView {
	res := make([]listingView, 0, len(listings))
	for _, l := range listings {
		res = append(res, listingView{Listing: l, Favorite: s.favorites.IsFavorite(l.ID)})
	}
	return res
}

// toSubmitResponse builds response for a submission, the acknowledgment is shown only if the CRM confirmed success
func toSubmitResponse(res domain.SubmitResult, ack string) submitResponse {
	resp := submitResponse{Delivered: res.Delivered, Stored: res.Stored}
	switch {
	case res.Success():
		resp.Message = ack
	case res.Stored:
		resp.Message = msgSubmissionReceived
	}
	return resp
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid listing ID %q", r.PathValue("id"))
	}
	return id, nil
}

// leadFields extracts non-empty lead fields from JSON or form body
func leadFields(r *http.Request) (map[string]string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var fields map[string]string
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			return nil, fmt.Errorf("invalid lead: %w", err)
		}
		return dropEmpty(fields), nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid lead form: %w", err)
	}
	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = r.PostForm.Get(k)
	}
	return dropEmpty(fields), nil
}

func dropEmpty(fields map[string]string) map[string]string {
	for k, v := range fields {
		if strings.TrimSpace(v) == "" {
			delete(fields, k)
		}
	}
	return fields
}

// criteriaFromQuery parses search criteria from query parameters, absent or empty values stay unset
func criteriaFromQuery(q url.Values) (domain.FilterCriteria, error) {
	c := domain.FilterCriteria{
		Type:      domain.PropertyType(q.Get("type")),
		Operation: domain.Operation(q.Get("operation")),
		Location:  strings.TrimSpace(q.Get("location")),
	}

	parseFloat := func(name string) (*float64, error) {
		v := q.Get(name)
		if v == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", name, v)
		}
		return &f, nil
	}

	var err error
	if c.PriceMin, err = parseFloat("priceMin"); err != nil {
		return domain.FilterCriteria{}, err
	}
	if c.PriceMax, err = parseFloat("priceMax"); err != nil {
		return domain.FilterCriteria{}, err
	}
	if v := q.Get("rooms"); v != "" {
		rooms, err := strconv.Atoi(v)
		if err != nil {
			return domain.FilterCriteria{}, fmt.Errorf("invalid rooms %q", v)
		}
		c.Rooms = &rooms
	}
	return c, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
