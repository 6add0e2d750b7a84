// Package metadata fetches external metadata for catalog entries, currently
// the IMDb rating used on movie cards.
package metadata

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// MetadataService scrapes public title pages for ratings on demand (admin
// triggered). It never runs in the request path of user traffic.
type MetadataService struct {
	db     *gorm.DB
	client *http.Client
}

func NewMetadataService(db *gorm.DB) *MetadataService {
	return &MetadataService{
		db: db,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchIMDbRating loads an IMDb title page and extracts the aggregate
// rating value.
func (s *MetadataService) FetchIMDbRating(imdbID string) (float64, error) {
	url := fmt.Sprintf("https://www.imdb.com/title/%s/", imdbID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	// IMDb serves a consent page to unidentified clients
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("imdb returned status %d for %s", resp.StatusCode, imdbID)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, err
	}

	text := doc.Find(`[data-testid="hero-rating-bar__aggregate-rating__score"] span`).First().Text()
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("no rating found on page for %s", imdbID)
	}

	rating, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable rating %q for %s: %w", text, imdbID, err)
	}
	return rating, nil
}

// RefreshMovieRating updates a movie's stored IMDb rating from the live page.
func (s *MetadataService) RefreshMovieRating(movieID uint, imdbID string) (float64, error) {
	rating, err := s.FetchIMDbRating(imdbID)
	if err != nil {
		utils.LogError("imdb rating refresh failed", err)
		return 0, err
	}
	if err := s.db.Model(&models.Movie{}).Where("id = ?", movieID).
		Update("imdb_rating", rating).Error; err != nil {
		return 0, err
	}
	utils.LogInfo(fmt.Sprintf("imdb rating for movie %d refreshed to %.1f", movieID, rating))
	return rating, nil
}
