// internal/web/web.go
package web

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

// Server renders the HTML pages. It calls the exact same services as
// the JSON API; no business rules live here.
type Server struct {
	Brands     *service.BrandService
	Campaigns  *service.CampaignService
	Programs   *service.ProgramService
	Placements *service.PlacementService
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.home)

	r.Get("/brands", s.listBrands)
	r.Get("/brands/new", s.newBrand)
	r.Post("/brands/new", s.createBrand)
	r.Get("/brands/{id}", s.brandDetail)
	r.Post("/brands/{id}/edit", s.editBrand)
	r.Post("/brands/{id}/delete", s.deleteBrand)

	r.Get("/campaigns", s.listCampaigns)
	r.Get("/campaigns/new", s.newCampaign)
	r.Post("/campaigns/new", s.createCampaign)
	r.Get("/campaigns/{id}", s.campaignDetail)
	r.Post("/campaigns/{id}/edit", s.editCampaign)
	r.Post("/campaigns/{id}/delete", s.deleteCampaign)

	r.Get("/programs", s.listPrograms)
	r.Get("/programs/new", s.newProgram)
	r.Post("/programs/new", s.createProgram)
	r.Get("/programs/{id}", s.programDetail)
	r.Post("/programs/{id}/edit", s.editProgram)
	r.Post("/programs/{id}/delete", s.deleteProgram)

	r.Get("/placements", s.listPlacements)
	r.Get("/placements/new", s.newPlacement)
	r.Post("/placements/new", s.createPlacement)
	r.Get("/placements/{id}", s.placementDetail)
	r.Post("/placements/{id}/edit", s.editPlacement)
	r.Post("/placements/{id}/delete", s.deletePlacement)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/campaigns", http.StatusSeeOther)
}

// page is embedded by every view struct.
type page struct {
	Title string
	Error string
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.Println("⚠️ failed to render template", name+":", err)
	}
}

type errorView struct {
	page
	Message string
}

// fail renders the generic error page with the status matching the
// error kind.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "something went wrong"
	switch {
	case appErrors.IsNotFound(err):
		status = http.StatusNotFound
		msg = err.Error()
	case appErrors.IsValidation(err):
		status = http.StatusBadRequest
		msg = err.Error()
	default:
		log.Println("⚠️ page request failed:", err)
	}
	s.render(w, status, "error", errorView{page: page{Title: "Error"}, Message: msg})
}

func urlID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, appErrors.NewValidation("id", "must be numeric")
	}
	return id, nil
}

func strPtr(v string) *string { return &v }

func queryIntParam(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func formInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.FormValue(key))
	return n
}

// formIntPtr returns nil when the field was left blank.
func formIntPtr(r *http.Request, key string) *int {
	v := r.FormValue(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// formDate parses an HTML date input; blank means no date.
func formDate(r *http.Request, key string) *time.Time {
	v := r.FormValue(key)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// listPageSize is how many rows the HTML tables show; the JSON API has
// real pagination for anything bigger.
const listPageSize = 100
