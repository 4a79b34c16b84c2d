package service_test

import (
	"sort"
	"strings"
	"testing"
	"time"

	appErrors "github.com/unclebandit/campaign-catalog/internal/errors"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/queue"
	"github.com/unclebandit/campaign-catalog/internal/repository"
	"github.com/unclebandit/campaign-catalog/internal/service"
)

// --- In-memory fixture store ---
//
// The fake repositories share one store so parent checks and cascade
// deletes behave like the real schema (ON DELETE CASCADE).

type memStore struct {
	brands     map[int]model.Brand
	campaigns  map[int]model.Campaign
	programs   map[int]model.Program
	placements map[int]model.Placement
	nextID     int
}

func newMemStore() *memStore {
	return &memStore{
		brands:     map[int]model.Brand{},
		campaigns:  map[int]model.Campaign{},
		programs:   map[int]model.Program{},
		placements: map[int]model.Placement{},
		nextID:     1,
	}
}

func (st *memStore) id() int {
	id := st.nextID
	st.nextID++
	return id
}

func (st *memStore) deleteBrand(id int) {
	delete(st.brands, id)
	for cid, c := range st.campaigns {
		if c.BrandID == id {
			st.deleteCampaign(cid)
		}
	}
}

func (st *memStore) deleteCampaign(id int) {
	delete(st.campaigns, id)
	for pid, p := range st.programs {
		if p.CampaignID == id {
			st.deleteProgram(pid)
		}
	}
}

func (st *memStore) deleteProgram(id int) {
	delete(st.programs, id)
	for plid, pl := range st.placements {
		if pl.ProgramID == id {
			delete(st.placements, plid)
		}
	}
}

// newest first, like ORDER BY created_at DESC, id DESC
func descIDs[M any](m map[int]M) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	return ids
}

func matchName(name, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(q))
}

func window[M any](items []M, offset, limit int) []M {
	if offset > len(items) {
		return []M{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// --- Fake repositories ---

type fakeBrandRepo struct{ st *memStore }

func (r *fakeBrandRepo) Create(b *model.Brand) error {
	now := time.Now().UTC()
	b.ID = r.st.id()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.st.brands[b.ID] = *b
	return nil
}

func (r *fakeBrandRepo) GetByID(id int) (*model.Brand, error) {
	b, ok := r.st.brands[id]
	if !ok {
		return nil, appErrors.NewBrandNotFound(id)
	}
	return &b, nil
}

func (r *fakeBrandRepo) List(offset, limit int, q string) ([]*model.Brand, int, error) {
	matched := []*model.Brand{}
	for _, id := range descIDs(r.st.brands) {
		b := r.st.brands[id]
		if matchName(b.Name, q) {
			matched = append(matched, &b)
		}
	}
	total := len(matched)
	return window(matched, offset, limit), total, nil
}

func (r *fakeBrandRepo) Update(b *model.Brand) error {
	if _, ok := r.st.brands[b.ID]; !ok {
		return appErrors.NewBrandNotFound(b.ID)
	}
	b.UpdatedAt = time.Now().UTC()
	r.st.brands[b.ID] = *b
	return nil
}

func (r *fakeBrandRepo) Delete(id int) error {
	if _, ok := r.st.brands[id]; !ok {
		return appErrors.NewBrandNotFound(id)
	}
	r.st.deleteBrand(id)
	return nil
}

func (r *fakeBrandRepo) ExistsByName(name string, excludeID int) (bool, error) {
	for id, b := range r.st.brands {
		if id != excludeID && strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCampaignRepo struct{ st *memStore }

func (r *fakeCampaignRepo) Create(c *model.Campaign) error {
	now := time.Now().UTC()
	c.ID = r.st.id()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = model.StatusPlanned
	}
	r.st.campaigns[c.ID] = *c
	return nil
}

func (r *fakeCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := r.st.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return &c, nil
}

func (r *fakeCampaignRepo) List(offset, limit int, q string, brandID int, status string) ([]*model.Campaign, int, error) {
	matched := []*model.Campaign{}
	for _, id := range descIDs(r.st.campaigns) {
		c := r.st.campaigns[id]
		if !matchName(c.Name, q) {
			continue
		}
		if brandID > 0 && c.BrandID != brandID {
			continue
		}
		if status != "" && string(c.Status) != status {
			continue
		}
		matched = append(matched, &c)
	}
	total := len(matched)
	return window(matched, offset, limit), total, nil
}

func (r *fakeCampaignRepo) Update(c *model.Campaign) error {
	if _, ok := r.st.campaigns[c.ID]; !ok {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	c.UpdatedAt = time.Now().UTC()
	r.st.campaigns[c.ID] = *c
	return nil
}

func (r *fakeCampaignRepo) Delete(id int) error {
	if _, ok := r.st.campaigns[id]; !ok {
		return appErrors.NewCampaignNotFound(id)
	}
	r.st.deleteCampaign(id)
	return nil
}

type fakeProgramRepo struct{ st *memStore }

func (r *fakeProgramRepo) Create(p *model.Program) error {
	now := time.Now().UTC()
	p.ID = r.st.id()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.st.programs[p.ID] = *p
	return nil
}

func (r *fakeProgramRepo) GetByID(id int) (*model.Program, error) {
	p, ok := r.st.programs[id]
	if !ok {
		return nil, appErrors.NewProgramNotFound(id)
	}
	return &p, nil
}

func (r *fakeProgramRepo) List(offset, limit int, q string, campaignID int) ([]*model.Program, int, error) {
	matched := []*model.Program{}
	for _, id := range descIDs(r.st.programs) {
		p := r.st.programs[id]
		if !matchName(p.Name, q) {
			continue
		}
		if campaignID > 0 && p.CampaignID != campaignID {
			continue
		}
		matched = append(matched, &p)
	}
	total := len(matched)
	return window(matched, offset, limit), total, nil
}

func (r *fakeProgramRepo) Update(p *model.Program) error {
	if _, ok := r.st.programs[p.ID]; !ok {
		return appErrors.NewProgramNotFound(p.ID)
	}
	p.UpdatedAt = time.Now().UTC()
	r.st.programs[p.ID] = *p
	return nil
}

func (r *fakeProgramRepo) Delete(id int) error {
	if _, ok := r.st.programs[id]; !ok {
		return appErrors.NewProgramNotFound(id)
	}
	r.st.deleteProgram(id)
	return nil
}

type fakePlacementRepo struct{ st *memStore }

func (r *fakePlacementRepo) Create(p *model.Placement) error {
	now := time.Now().UTC()
	p.ID = r.st.id()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.st.placements[p.ID] = *p
	return nil
}

func (r *fakePlacementRepo) GetByID(id int) (*model.Placement, error) {
	p, ok := r.st.placements[id]
	if !ok {
		return nil, appErrors.NewPlacementNotFound(id)
	}
	return &p, nil
}

func (r *fakePlacementRepo) List(offset, limit int, q string, programID int, channel string) ([]*model.Placement, int, error) {
	matched := []*model.Placement{}
	for _, id := range descIDs(r.st.placements) {
		p := r.st.placements[id]
		if !matchName(p.Name, q) {
			continue
		}
		if programID > 0 && p.ProgramID != programID {
			continue
		}
		if channel != "" && string(p.Channel) != channel {
			continue
		}
		matched = append(matched, &p)
	}
	total := len(matched)
	return window(matched, offset, limit), total, nil
}

func (r *fakePlacementRepo) Update(p *model.Placement) error {
	if _, ok := r.st.placements[p.ID]; !ok {
		return appErrors.NewPlacementNotFound(p.ID)
	}
	p.UpdatedAt = time.Now().UTC()
	r.st.placements[p.ID] = *p
	return nil
}

func (r *fakePlacementRepo) Delete(id int) error {
	if _, ok := r.st.placements[id]; !ok {
		return appErrors.NewPlacementNotFound(id)
	}
	delete(r.st.placements, id)
	return nil
}

var _ repository.BrandRepositoryInterface = (*fakeBrandRepo)(nil)
var _ repository.CampaignRepositoryInterface = (*fakeCampaignRepo)(nil)
var _ repository.ProgramRepositoryInterface = (*fakeProgramRepo)(nil)
var _ repository.PlacementRepositoryInterface = (*fakePlacementRepo)(nil)

// capturePublisher records published events.
type capturePublisher struct {
	events []queue.Event
}

func (p *capturePublisher) Publish(ev queue.Event) error {
	p.events = append(p.events, ev)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

// --- Fixture ---

type catalog struct {
	brands     *service.BrandService
	campaigns  *service.CampaignService
	programs   *service.ProgramService
	placements *service.PlacementService
	published  *capturePublisher
}

func newCatalog() *catalog {
	st := newMemStore()
	brandRepo := &fakeBrandRepo{st: st}
	campaignRepo := &fakeCampaignRepo{st: st}
	programRepo := &fakeProgramRepo{st: st}
	placementRepo := &fakePlacementRepo{st: st}
	pub := &capturePublisher{}

	return &catalog{
		brands:     &service.BrandService{BrandRepo: brandRepo, Events: pub},
		campaigns:  &service.CampaignService{CampaignRepo: campaignRepo, BrandRepo: brandRepo, Events: pub},
		programs:   &service.ProgramService{ProgramRepo: programRepo, CampaignRepo: campaignRepo, Events: pub},
		placements: &service.PlacementService{PlacementRepo: placementRepo, ProgramRepo: programRepo, Events: pub},
		published:  pub,
	}
}

func mustBrand(t *testing.T, c *catalog, name string) *model.Brand {
	t.Helper()
	b, err := c.brands.Create(service.CreateBrandInput{Name: name})
	if err != nil {
		t.Fatalf("create brand %q: %v", name, err)
	}
	return b
}

func mustCampaign(t *testing.T, c *catalog, name string, brandID int) *model.Campaign {
	t.Helper()
	cmp, err := c.campaigns.Create(service.CreateCampaignInput{Name: name, BrandID: brandID})
	if err != nil {
		t.Fatalf("create campaign %q: %v", name, err)
	}
	return cmp
}

func mustProgram(t *testing.T, c *catalog, name string, campaignID int) *model.Program {
	t.Helper()
	p, err := c.programs.Create(service.CreateProgramInput{Name: name, CampaignID: campaignID})
	if err != nil {
		t.Fatalf("create program %q: %v", name, err)
	}
	return p
}

func mustPlacement(t *testing.T, c *catalog, name string, programID int, channel model.Channel) *model.Placement {
	t.Helper()
	pl, err := c.placements.Create(service.CreatePlacementInput{Name: name, ProgramID: programID, Channel: channel})
	if err != nil {
		t.Fatalf("create placement %q: %v", name, err)
	}
	return pl
}

// --- Tests ---

func TestCreateBrandRequiresName(t *testing.T) {
	c := newCatalog()

	_, err := c.brands.Create(service.CreateBrandInput{Name: "   "})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDuplicateBrandNameRejected(t *testing.T) {
	c := newCatalog()
	mustBrand(t, c, "Acme")

	_, err := c.brands.Create(service.CreateBrandInput{Name: "acme"})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate name, got %v", err)
	}
}

func TestCreateCampaignWithMissingBrandFails(t *testing.T) {
	c := newCatalog()

	_, err := c.campaigns.Create(service.CreateCampaignInput{Name: "Orphan", BrandID: 42})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, pagination, err := c.campaigns.List(service.CampaignListFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if pagination["total_count"] != 0 {
		t.Errorf("expected no campaigns persisted, got %d", pagination["total_count"])
	}
}

func TestInvalidChannelRejected(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	cmp := mustCampaign(t, c, "Q1", b.ID)
	p := mustProgram(t, c, "Drip", cmp.ID)

	_, err := c.placements.Create(service.CreatePlacementInput{
		Name:      "Bad",
		ProgramID: p.ID,
		Channel:   model.Channel("carrier-pigeon"),
	})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateRefreshesUpdatedAtOnly(t *testing.T) {
	c := newCatalog()
	b, err := c.brands.Create(service.CreateBrandInput{Name: "Acme", Pharma: "Acme Pharma"})
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(5 * time.Millisecond)

	updated, err := c.brands.Update(b.ID, service.UpdateBrandInput{Name: strPtr("Acme Health")})
	if err != nil {
		t.Fatal(err)
	}

	if !updated.CreatedAt.Equal(b.CreatedAt) {
		t.Errorf("created_at changed on update: %v -> %v", b.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", updated.UpdatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(b.UpdatedAt) {
		t.Errorf("updated_at not refreshed: %v", updated.UpdatedAt)
	}
	if updated.Name != "Acme Health" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Pharma != "Acme Pharma" {
		t.Errorf("untouched field changed: %q", updated.Pharma)
	}
}

func TestUpdateCampaignToMissingBrandFails(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	cmp := mustCampaign(t, c, "Q1", b.ID)

	missing := 999
	_, err := c.campaigns.Update(cmp.ID, service.UpdateCampaignInput{BrandID: &missing})
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := c.campaigns.Get(cmp.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.BrandID != b.ID {
		t.Errorf("brand_id changed despite failed update: %d", got.BrandID)
	}
}

func TestDeleteBrandCascades(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	cmp := mustCampaign(t, c, "Q1", b.ID)
	p := mustProgram(t, c, "Drip", cmp.ID)
	pl := mustPlacement(t, c, "Welcome", p.ID, model.ChannelEmail)

	if err := c.brands.Delete(b.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := c.campaigns.Get(cmp.ID); !appErrors.IsNotFound(err) {
		t.Errorf("campaign survived cascade: %v", err)
	}
	if _, err := c.programs.Get(p.ID); !appErrors.IsNotFound(err) {
		t.Errorf("program survived cascade: %v", err)
	}
	if _, err := c.placements.Get(pl.ID); !appErrors.IsNotFound(err) {
		t.Errorf("placement survived cascade: %v", err)
	}
}

func TestDeleteMissingReturnsNotFound(t *testing.T) {
	c := newCatalog()

	if err := c.placements.Delete(7); !appErrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlacementChannelFilter(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	cmp := mustCampaign(t, c, "Q1", b.ID)
	p := mustProgram(t, c, "Drip", cmp.ID)
	mustPlacement(t, c, "Welcome Email", p.ID, model.ChannelEmail)
	mustPlacement(t, c, "App Banner", p.ID, model.ChannelApp)
	mustPlacement(t, c, "Reminder Email", p.ID, model.ChannelEmail)

	got, _, err := c.placements.List(service.PlacementListFilter{Channel: "email"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 email placements, got %d", len(got))
	}
	for _, pl := range got {
		if pl.Channel != model.ChannelEmail {
			t.Errorf("wrong channel in result: %s", pl.Channel)
		}
	}
}

func TestCreateReadRoundTrip(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	cmp := mustCampaign(t, c, "Q1", b.ID)
	p := mustProgram(t, c, "Drip", cmp.ID)

	before := time.Now().UTC()
	created, err := c.placements.Create(service.CreatePlacementInput{
		Name:       "Welcome Email",
		ProgramID:  p.ID,
		Channel:    model.ChannelEmail,
		VeevaCode:  "N12345",
		AdServerID: "DC-98765",
	})
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().UTC()

	got, err := c.placements.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Name != created.Name || got.ProgramID != created.ProgramID ||
		got.Channel != created.Channel || got.VeevaCode != created.VeevaCode ||
		got.AdServerID != created.AdServerID {
		t.Errorf("round trip mismatch: %+v vs %+v", got, created)
	}
	if got.CreatedAt.Before(before) || got.CreatedAt.After(after) {
		t.Errorf("created_at %v outside [%v, %v]", got.CreatedAt, before, after)
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestHierarchyEndToEnd(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	cmp := mustCampaign(t, c, "Q1 Launch", b.ID)
	p := mustProgram(t, c, "Email Drip", cmp.ID)
	mustPlacement(t, c, "Welcome Email", p.ID, model.ChannelEmail)

	got, pagination, err := c.placements.List(service.PlacementListFilter{ProgramID: p.ID})
	if err != nil {
		t.Fatal(err)
	}
	if pagination["total_count"] != 1 || len(got) != 1 {
		t.Fatalf("expected exactly one placement, got %d", len(got))
	}
	if got[0].Name != "Welcome Email" {
		t.Errorf("expected Welcome Email, got %q", got[0].Name)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	c := newCatalog()
	mustBrand(t, c, "Acme Alpha")
	mustBrand(t, c, "acme beta")
	mustBrand(t, c, "Other")

	got, _, err := c.brands.List(service.BrandListFilter{Q: "ACME"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
}

func TestListPaginationBounds(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	for i := 0; i < 25; i++ {
		mustCampaign(t, c, "Campaign "+strings.Repeat("x", i+1), b.ID)
	}

	got, pagination, err := c.campaigns.List(service.CampaignListFilter{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Errorf("expected 5 rows on last page, got %d", len(got))
	}
	if pagination["total_count"] != 25 || pagination["total_pages"] != 3 {
		t.Errorf("unexpected pagination: %+v", pagination)
	}

	// Out-of-range page is clamped to valid input, not an error.
	got, _, err = c.campaigns.List(service.CampaignListFilter{Page: 99, PageSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty page, got %d rows", len(got))
	}
}

func TestMutationsPublishEvents(t *testing.T) {
	c := newCatalog()
	b := mustBrand(t, c, "Acme")
	if _, err := c.brands.Update(b.ID, service.UpdateBrandInput{Pharma: strPtr("Acme Pharma")}); err != nil {
		t.Fatal(err)
	}
	if err := c.brands.Delete(b.ID); err != nil {
		t.Fatal(err)
	}

	want := []queue.Event{
		{Entity: "brand", ID: b.ID, Action: "created"},
		{Entity: "brand", ID: b.ID, Action: "updated"},
		{Entity: "brand", ID: b.ID, Action: "deleted"},
	}
	if len(c.published.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(c.published.events))
	}
	for i, ev := range want {
		if c.published.events[i] != ev {
			t.Errorf("event %d: expected %+v, got %+v", i, ev, c.published.events[i])
		}
	}
}

func strPtr(v string) *string { return &v }
