package feed

import (
	"encoding/xml"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/umputun/realtor/pkg/domain"
	"github.com/umputun/realtor/pkg/listing"
)

// Generator creates RSS feeds from listings
type Generator struct {
	baseURL string
	now     func() time.Time
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// GenerateRSS creates an RSS 2.0 feed from listings, selfPath is the route serving the feed
func (g *Generator) GenerateRSS(listings []domain.Listing, title, selfPath string) (string, error) {
	rssItems := make([]*RSSItem, 0, len(listings))
	for _, l := range listings {
		rssItems = append(rssItems, g.convertToRSSItem(l))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("%s: %d объектов", title, len(listings)),
			Language:      "ru",
			AtomLink:      &AtomLink{Href: g.baseURL + selfPath, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: g.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a listing to an RSS item
func (g *Generator) convertToRSSItem(l domain.Listing) *RSSItem {
	parts := []string{listing.OperationLabel(l.Operation), listing.FormatPrice(l.Price)}
	if l.Rooms > 0 {
		parts = append(parts, fmt.Sprintf("%d комн.", l.Rooms))
	}
	parts = append(parts, listing.FormatArea(l.Area)+" м²", l.Location)
	desc := strings.Join(parts, " · ")

	item := &RSSItem{
		Title:       l.Title,
		Link:        fmt.Sprintf("%s/listings/%d", g.baseURL, l.ID),
		GUID:        RSSGUID{Value: fmt.Sprintf("listing-%d", l.ID)},
		Description: desc,
	}
	if l.Type != "" {
		item.Categories = append(item.Categories, string(l.Type))
	}
	if l.Operation != "" {
		item.Categories = append(item.Categories, string(l.Operation))
	}

	if l.Image != "" {
		mimeType := mime.TypeByExtension(path.Ext(l.Image))
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		item.Enclosure = &RSSEnclosure{URL: g.absURL(l.Image), Type: mimeType}
	}
	return item
}

// absURL makes relative image paths absolute against the base URL
func (g *Generator) absURL(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return g.baseURL + "/" + strings.TrimLeft(u, "/")
}
