package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/umputun/realtor/pkg/domain"
	"github.com/umputun/realtor/pkg/listing"
)

// templateFuncs are helpers available to card templates
var templateFuncs = template.FuncMap{
	"price":     listing.FormatPrice,
	"area":      listing.FormatArea,
	"operation": listing.OperationLabel,
}

// featuredCardsHandler renders featured listings as a fragment of property cards
func (s *Server) featuredCardsHandler(w http.ResponseWriter, r *http.Request) {
	cards := s.withFavorites(s.listings.FetchFeatured(r.Context()))

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "listing-cards", cards); err != nil {
		log.Printf("[ERROR] failed to render listing cards: %v", err)
		http.Error(w, "Failed to render listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[ERROR] failed to write listing cards: %v", err)
	}
}

// featuredRSSHandler serves featured listings as RSS feed
func (s *Server) featuredRSSHandler(w http.ResponseWriter, r *http.Request) {
	s.rssHandler(w, "Избранные объекты", "/rss/featured", s.listings.FetchFeatured(r.Context()))
}

// searchRSSHandler serves listings matching query criteria as RSS feed
func (s *Server) searchRSSHandler(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	selfPath := "/rss/search"
	if r.URL.RawQuery != "" {
		selfPath += "?" + r.URL.RawQuery
	}
	s.rssHandler(w, "Результаты поиска", selfPath, s.listings.Search(r.Context(), criteria))
}

func (s *Server) rssHandler(w http.ResponseWriter, title, selfPath string, listings []domain.Listing) {
	rss, err := s.feeds.GenerateRSS(listings, title, selfPath)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := fmt.Fprint(w, rss); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
