package campaign

import (
	"context"
	"errors"
	"testing"

	"brandBOS/domain"
)

type fakeCampaignRepo struct {
	campaigns map[string]domain.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]domain.Campaign)}
}

func (r *fakeCampaignRepo) Create(ctx context.Context, campaign *domain.Campaign) error {
	r.campaigns[campaign.ID] = *campaign
	return nil
}

func (r *fakeCampaignRepo) FindByID(ctx context.Context, id string) (domain.Campaign, error) {
	c, ok := r.campaigns[id]
	if !ok {
		return domain.Campaign{}, errors.New("campaign not found")
	}
	return c, nil
}

func (r *fakeCampaignRepo) FindByAccount(ctx context.Context, accountID string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.AccountID == accountID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) FindByAccountAndStatus(ctx context.Context, accountID, status string) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.AccountID == accountID && c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, campaign *domain.Campaign) error {
	if _, ok := r.campaigns[campaign.ID]; !ok {
		return errors.New("campaign not found")
	}
	r.campaigns[campaign.ID] = *campaign
	return nil
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.campaigns[id]; !ok {
		return errors.New("campaign not found")
	}
	delete(r.campaigns, id)
	return nil
}

func TestCreateCampaignDefaults(t *testing.T) {
	repo := newFakeCampaignRepo()
	svc := NewCampaignService(repo)

	created, err := svc.CreateCampaign(context.Background(), &domain.Campaign{
		AccountID: "acct-1",
		Title:     "Launch Week",
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}

	if created.ID == "" {
		t.Error("campaign id was not assigned")
	}
	if created.Status != domain.CampaignStatusQueued {
		t.Errorf("Status = %s, want queued by default", created.Status)
	}
	if created.StartDate != nil {
		t.Error("queued campaign must not get a start date")
	}
	if _, ok := repo.campaigns[created.ID]; !ok {
		t.Error("campaign was not persisted")
	}
}

func TestCreateCampaignActiveStartsClock(t *testing.T) {
	repo := newFakeCampaignRepo()
	svc := NewCampaignService(repo)

	created, err := svc.CreateCampaign(context.Background(), &domain.Campaign{
		AccountID: "acct-1",
		Title:     "Always On",
		Status:    domain.CampaignStatusActive,
	})
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}

	if created.StartDate == nil {
		t.Error("active campaign must get a start date")
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo())

	cases := []struct {
		name     string
		campaign domain.Campaign
		wantErr  string
	}{
		{"missing title", domain.Campaign{AccountID: "acct-1"}, "campaign title is required"},
		{"missing account", domain.Campaign{Title: "X"}, "account id is required"},
		{"negative budget", domain.Campaign{AccountID: "acct-1", Title: "X", BudgetAllocated: -5}, "budget must be non-negative"},
		{"bad status", domain.Campaign{AccountID: "acct-1", Title: "X", Status: "archived"}, "invalid campaign status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCampaign(context.Background(), &tc.campaign)
			if err == nil || err.Error() != tc.wantErr {
				t.Errorf("err = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestGetCampaignsStatusFilter(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.campaigns["cmp-1"] = domain.Campaign{ID: "cmp-1", AccountID: "acct-1", Title: "A", Status: domain.CampaignStatusActive}
	repo.campaigns["cmp-2"] = domain.Campaign{ID: "cmp-2", AccountID: "acct-1", Title: "B", Status: domain.CampaignStatusQueued}
	repo.campaigns["cmp-3"] = domain.Campaign{ID: "cmp-3", AccountID: "acct-2", Title: "C", Status: domain.CampaignStatusActive}

	svc := NewCampaignService(repo)

	all, err := svc.GetCampaigns(context.Background(), "acct-1", "")
	if err != nil {
		t.Fatalf("GetCampaigns: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d campaigns for acct-1, want 2", len(all))
	}

	active, err := svc.GetCampaigns(context.Background(), "acct-1", domain.CampaignStatusActive)
	if err != nil {
		t.Fatalf("GetCampaigns(active): %v", err)
	}
	if len(active) != 1 || active[0].ID != "cmp-1" {
		t.Errorf("active filter returned %v", active)
	}

	if _, err := svc.GetCampaigns(context.Background(), "acct-1", "archived"); err == nil {
		t.Error("expected error for unknown status filter")
	}
	if _, err := svc.GetCampaigns(context.Background(), "", ""); err == nil {
		t.Error("expected error for missing account id")
	}
}

func TestUpdateCampaignQueuedToActive(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.campaigns["cmp-1"] = domain.Campaign{ID: "cmp-1", AccountID: "acct-1", Title: "A", Status: domain.CampaignStatusQueued}

	svc := NewCampaignService(repo)

	updated, err := svc.UpdateCampaign(context.Background(), &domain.Campaign{
		ID:        "cmp-1",
		AccountID: "acct-1",
		Title:     "A",
		Status:    domain.CampaignStatusActive,
	})
	if err != nil {
		t.Fatalf("UpdateCampaign: %v", err)
	}

	if updated.Status != domain.CampaignStatusActive {
		t.Errorf("Status = %s, want active", updated.Status)
	}
	if updated.StartDate == nil {
		t.Error("activation must start the ramp-up clock")
	}
}

func TestUpdateCampaignNotFound(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo())

	_, err := svc.UpdateCampaign(context.Background(), &domain.Campaign{ID: "ghost", Title: "X"})
	if err == nil || err.Error() != "campaign not found" {
		t.Errorf("err = %v, want 'campaign not found'", err)
	}
}

func TestUpdateMetrics(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.campaigns["cmp-1"] = domain.Campaign{ID: "cmp-1", AccountID: "acct-1", Title: "A", Status: domain.CampaignStatusActive}

	svc := NewCampaignService(repo)

	updated, err := svc.UpdateMetrics(context.Background(), "cmp-1", domain.CampaignMetrics{
		CTR:                2.5,
		ConversionRate:     5,
		AuthorityImpact:    60,
		CostPerAcquisition: 40,
	})
	if err != nil {
		t.Fatalf("UpdateMetrics: %v", err)
	}

	if updated.CTR != 2.5 || updated.ConversionRate != 5 || updated.AuthorityImpact != 60 || updated.CostPerAcquisition != 40 {
		t.Errorf("metrics not applied: %+v", updated.Metrics())
	}

	stored := repo.campaigns["cmp-1"]
	if stored.CTR != 2.5 {
		t.Error("metrics not persisted")
	}
}

func TestUpdateMetricsRejectsNegative(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.campaigns["cmp-1"] = domain.Campaign{ID: "cmp-1", AccountID: "acct-1", Title: "A"}

	svc := NewCampaignService(repo)

	_, err := svc.UpdateMetrics(context.Background(), "cmp-1", domain.CampaignMetrics{CTR: -1})
	if err == nil || err.Error() != "metric values must be non-negative" {
		t.Errorf("err = %v, want 'metric values must be non-negative'", err)
	}
}

func TestDeleteCampaign(t *testing.T) {
	repo := newFakeCampaignRepo()
	repo.campaigns["cmp-1"] = domain.Campaign{ID: "cmp-1", AccountID: "acct-1", Title: "A"}

	svc := NewCampaignService(repo)

	if err := svc.DeleteCampaign(context.Background(), "cmp-1"); err != nil {
		t.Fatalf("DeleteCampaign: %v", err)
	}
	if _, ok := repo.campaigns["cmp-1"]; ok {
		t.Error("campaign still present after delete")
	}

	if err := svc.DeleteCampaign(context.Background(), "cmp-1"); err == nil || err.Error() != "campaign not found" {
		t.Errorf("err = %v, want 'campaign not found'", err)
	}
}
