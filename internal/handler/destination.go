package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/service"
)

// destinationRequest is the admin create payload. showOnHomepage is a
// pointer so an absent field defaults to true, per the catalog contract.
type destinationRequest struct {
	Name             string                `json:"name"`
	Slug             string                `json:"slug"`
	Price            int                   `json:"price"`
	Duration         string                `json:"duration"`
	ShortDescription string                `json:"shortDescription"`
	Description      string                `json:"description"`
	Highlights       []string              `json:"highlights"`
	Images           []string              `json:"images"`
	Itinerary        []domain.ItineraryDay `json:"itinerary"`
	Inclusions       []string              `json:"inclusions"`
	Exclusions       []string              `json:"exclusions"`
	Featured         bool                  `json:"featured"`
	ShowOnHomepage   *bool                 `json:"showOnHomepage"`
	Rating           float64               `json:"rating"`
}

func (req destinationRequest) toDomain() domain.Destination {
	d := domain.Destination{
		Name:             req.Name,
		Slug:             req.Slug,
		Price:            req.Price,
		Duration:         req.Duration,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Highlights:       req.Highlights,
		Images:           req.Images,
		Itinerary:        req.Itinerary,
		Inclusions:       req.Inclusions,
		Exclusions:       req.Exclusions,
		Featured:         req.Featured,
		ShowOnHomepage:   true,
		Rating:           req.Rating,
	}
	if req.ShowOnHomepage != nil {
		d.ShowOnHomepage = *req.ShowOnHomepage
	}
	return d
}

// destinationPatchRequest is the admin partial-update payload: every field
// optional, absent means untouched.
type destinationPatchRequest struct {
	Name             *string                `json:"name"`
	Slug             *string                `json:"slug"`
	Price            *int                   `json:"price"`
	Duration         *string                `json:"duration"`
	ShortDescription *string                `json:"shortDescription"`
	Description      *string                `json:"description"`
	Highlights       *[]string              `json:"highlights"`
	Images           *[]string              `json:"images"`
	Itinerary        *[]domain.ItineraryDay `json:"itinerary"`
	Inclusions       *[]string              `json:"inclusions"`
	Exclusions       *[]string              `json:"exclusions"`
	Featured         *bool                  `json:"featured"`
	ShowOnHomepage   *bool                  `json:"showOnHomepage"`
	Rating           *float64               `json:"rating"`
}

func (req destinationPatchRequest) toPatch() domain.DestinationPatch {
	return domain.DestinationPatch{
		Name:             req.Name,
		Slug:             req.Slug,
		Price:            req.Price,
		Duration:         req.Duration,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Highlights:       req.Highlights,
		Images:           req.Images,
		Itinerary:        req.Itinerary,
		Inclusions:       req.Inclusions,
		Exclusions:       req.Exclusions,
		Featured:         req.Featured,
		ShowOnHomepage:   req.ShowOnHomepage,
		Rating:           req.Rating,
	}
}

// handleListDestinations handles GET /destinations.
// ?featured=true restricts to featured; ?homepage=true drops destinations
// hidden from the homepage.
func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	homepage := r.URL.Query().Get("homepage") == "true"

	destinations, err := s.catalog.List(r.Context(), featured, homepage)
	if err != nil {
		respondServiceError(w, r, err, "destinations")
		return
	}
	respondData(w, http.StatusOK, destinations)
}

// handleSearchDestinations handles GET /destinations/search?q=.
// The filter runs over the full fetched list; the catalog is small enough
// that this never matters.
func (s *Server) handleSearchDestinations(w http.ResponseWriter, r *http.Request) {
	all, err := s.catalog.List(r.Context(), false, false)
	if err != nil {
		respondServiceError(w, r, err, "destinations")
		return
	}
	respondData(w, http.StatusOK, service.Search(all, r.URL.Query().Get("q")))
}

// handleGetDestination handles GET /destinations/{id}. 404 if absent.
func (s *Server) handleGetDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	d, err := s.catalog.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err, "destination")
		return
	}
	respondData(w, http.StatusOK, d)
}

// handleGetDestinationBySlug handles GET /destinations/slug/{slug}.
func (s *Server) handleGetDestinationBySlug(w http.ResponseWriter, r *http.Request) {
	d, err := s.catalog.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondServiceError(w, r, err, "destination")
		return
	}
	respondData(w, http.StatusOK, d)
}

// handleCreateDestination handles POST /destinations (admin).
func (s *Server) handleCreateDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.catalog.Create(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, r, err, "destination")
		return
	}
	respondData(w, http.StatusCreated, created)
}

// handleUpdateDestination handles PUT /destinations/{id} (admin).
// The body is a partial document: only fields present are changed.
func (s *Server) handleUpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req destinationPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.catalog.Update(r.Context(), id, req.toPatch())
	if err != nil {
		respondServiceError(w, r, err, "destination")
		return
	}
	respondData(w, http.StatusOK, updated)
}

// handleDeleteDestination handles DELETE /destinations/{id} (admin).
// Hard delete, no undo.
func (s *Server) handleDeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := s.catalog.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err, "destination")
		return
	}
	respondMessage(w, http.StatusOK, "destination deleted")
}
