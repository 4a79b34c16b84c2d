package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-catalog/internal/controller"
	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

// --- Mock repositories ---

type mockBrandRepo struct {
	brands map[int]model.Brand
	nextID int
}

func (m *mockBrandRepo) Create(b *model.Brand) error {
	m.nextID++
	b.ID = m.nextID
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	m.brands[b.ID] = *b
	return nil
}

func (m *mockBrandRepo) GetByID(id int) (*model.Brand, error) {
	b, ok := m.brands[id]
	if !ok {
		return nil, appErrors.NewBrandNotFound(id)
	}
	return &b, nil
}

func (m *mockBrandRepo) List(offset, limit int, q string) ([]*model.Brand, int, error) {
	out := []*model.Brand{}
	for id := m.nextID; id > 0; id-- {
		b, ok := m.brands[id]
		if !ok {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(b.Name), strings.ToLower(q)) {
			continue
		}
		out = append(out, &b)
	}
	return out, len(out), nil
}

func (m *mockBrandRepo) Update(b *model.Brand) error {
	if _, ok := m.brands[b.ID]; !ok {
		return appErrors.NewBrandNotFound(b.ID)
	}
	b.UpdatedAt = time.Now().UTC()
	m.brands[b.ID] = *b
	return nil
}

func (m *mockBrandRepo) Delete(id int) error {
	if _, ok := m.brands[id]; !ok {
		return appErrors.NewBrandNotFound(id)
	}
	delete(m.brands, id)
	return nil
}

func (m *mockBrandRepo) ExistsByName(name string, excludeID int) (bool, error) {
	for id, b := range m.brands {
		if id != excludeID && strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type mockProgramRepo struct {
	programs map[int]model.Program
}

func (m *mockProgramRepo) Create(p *model.Program) error { return nil }
func (m *mockProgramRepo) GetByID(id int) (*model.Program, error) {
	p, ok := m.programs[id]
	if !ok {
		return nil, appErrors.NewProgramNotFound(id)
	}
	return &p, nil
}
func (m *mockProgramRepo) List(offset, limit int, q string, campaignID int) ([]*model.Program, int, error) {
	return []*model.Program{}, 0, nil
}
func (m *mockProgramRepo) Update(p *model.Program) error { return nil }
func (m *mockProgramRepo) Delete(id int) error           { return nil }

type mockPlacementRepo struct {
	placements map[int]model.Placement
	nextID     int
}

func (m *mockPlacementRepo) Create(p *model.Placement) error {
	m.nextID++
	p.ID = m.nextID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.placements[p.ID] = *p
	return nil
}

func (m *mockPlacementRepo) GetByID(id int) (*model.Placement, error) {
	p, ok := m.placements[id]
	if !ok {
		return nil, appErrors.NewPlacementNotFound(id)
	}
	return &p, nil
}

func (m *mockPlacementRepo) List(offset, limit int, q string, programID int, channel string) ([]*model.Placement, int, error) {
	out := []*model.Placement{}
	for id := m.nextID; id > 0; id-- {
		p, ok := m.placements[id]
		if !ok {
			continue
		}
		if channel != "" && string(p.Channel) != channel {
			continue
		}
		out = append(out, &p)
	}
	return out, len(out), nil
}

func (m *mockPlacementRepo) Update(p *model.Placement) error { return nil }
func (m *mockPlacementRepo) Delete(id int) error             { return nil }

// --- Router fixture ---

func newTestRouter() (*chi.Mux, *mockBrandRepo, *mockPlacementRepo, *mockProgramRepo) {
	brandRepo := &mockBrandRepo{brands: map[int]model.Brand{}}
	programRepo := &mockProgramRepo{programs: map[int]model.Program{}}
	placementRepo := &mockPlacementRepo{placements: map[int]model.Placement{}}

	brandCtrl := &controller.BrandController{
		BrandService: &service.BrandService{BrandRepo: brandRepo},
	}
	placementCtrl := &controller.PlacementController{
		PlacementService: &service.PlacementService{
			PlacementRepo: placementRepo,
			ProgramRepo:   programRepo,
		},
	}

	r := chi.NewRouter()
	r.Post("/api/brands", brandCtrl.CreateBrand)
	r.Get("/api/brands", brandCtrl.ListBrands)
	r.Get("/api/brands/{id}", brandCtrl.GetBrand)
	r.Put("/api/brands/{id}", brandCtrl.UpdateBrand)
	r.Delete("/api/brands/{id}", brandCtrl.DeleteBrand)
	r.Post("/api/placements", placementCtrl.CreatePlacement)
	r.Get("/api/placements", placementCtrl.ListPlacements)

	return r, brandRepo, placementRepo, programRepo
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestCreateBrandEndpoint(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/api/brands", map[string]string{"name": "Acme"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var got model.Brand
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.ID == 0 || got.Name != "Acme" {
		t.Errorf("unexpected brand: %+v", got)
	}
}

func TestCreateBrandValidationReturns400(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/api/brands", map[string]string{"name": ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestGetBrandNotFoundReturns404(t *testing.T) {
	r, _, _, _ := newTestRouter()

	w := doJSON(t, r, "GET", "/api/brands/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body["error"], "not found") {
		t.Errorf("expected not-found message, got %q", body["error"])
	}
}

func TestCreatePlacementInvalidChannelReturns400(t *testing.T) {
	r, _, _, programRepo := newTestRouter()
	programRepo.programs[1] = model.Program{ID: 1, Name: "Drip"}

	w := doJSON(t, r, "POST", "/api/placements", map[string]interface{}{
		"name":       "Bad",
		"program_id": 1,
		"channel":    "fax",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListPlacementsChannelFilter(t *testing.T) {
	r, _, placementRepo, programRepo := newTestRouter()
	programRepo.programs[1] = model.Program{ID: 1, Name: "Drip"}

	for i, ch := range []model.Channel{model.ChannelEmail, model.ChannelApp, model.ChannelEmail} {
		w := doJSON(t, r, "POST", "/api/placements", map[string]interface{}{
			"name":       fmt.Sprintf("Placement %d", i),
			"program_id": 1,
			"channel":    string(ch),
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("seed placement %d: got %d: %s", i, w.Code, w.Body.String())
		}
	}
	if len(placementRepo.placements) != 3 {
		t.Fatalf("expected 3 placements stored, got %d", len(placementRepo.placements))
	}

	w := doJSON(t, r, "GET", "/api/placements?channel=email", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data []model.Placement `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 email placements, got %d", len(body.Data))
	}
	for _, p := range body.Data {
		if p.Channel != model.ChannelEmail {
			t.Errorf("wrong channel: %s", p.Channel)
		}
	}
}

func TestUpdateBrandPartial(t *testing.T) {
	r, brandRepo, _, _ := newTestRouter()

	w := doJSON(t, r, "POST", "/api/brands", map[string]string{"name": "Acme", "pharma": "Acme Pharma"})
	if w.Code != http.StatusCreated {
		t.Fatalf("seed brand: got %d", w.Code)
	}

	w = doJSON(t, r, "PUT", "/api/brands/1", map[string]string{"therapeutic_area": "Immunology"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got := brandRepo.brands[1]
	if got.Name != "Acme" || got.Pharma != "Acme Pharma" || got.TherapeuticArea != "Immunology" {
		t.Errorf("unexpected brand after partial update: %+v", got)
	}
}

func TestDeleteBrandEndpoint(t *testing.T) {
	r, brandRepo, _, _ := newTestRouter()
	brandRepo.nextID = 1
	brandRepo.brands[1] = model.Brand{ID: 1, Name: "Acme"}

	w := doJSON(t, r, "DELETE", "/api/brands/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if _, ok := brandRepo.brands[1]; ok {
		t.Error("brand still present after delete")
	}

	w = doJSON(t, r, "DELETE", "/api/brands/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
}
