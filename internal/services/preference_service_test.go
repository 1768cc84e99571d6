package services

import (
	"testing"

	"print_shop/internal/models"
	"print_shop/internal/repository/mocks"

	"go.uber.org/mock/gomock"
)

// fakePreferenceCache is an in-memory stand-in for the redis client.
type fakePreferenceCache struct {
	entries map[uint]*models.OrderPreferences
	sets    int
	deletes int
}

func newFakePreferenceCache() *fakePreferenceCache {
	return &fakePreferenceCache{entries: map[uint]*models.OrderPreferences{}}
}

func (c *fakePreferenceCache) GetPreferences(orgID uint) (*models.OrderPreferences, error) {
	return c.entries[orgID], nil
}

func (c *fakePreferenceCache) SetPreferences(orgID uint, prefs *models.OrderPreferences) error {
	c.entries[orgID] = prefs
	c.sets++
	return nil
}

func (c *fakePreferenceCache) DeletePreferences(orgID uint) error {
	delete(c.entries, orgID)
	c.deletes++
	return nil
}

func TestPreferenceGetPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationRepository(ctrl)
	audits := mocks.NewMockAuditLogRepository(ctrl)
	cache := newFakePreferenceCache()
	svc := NewPreferenceService(orgs, NewAuditLogger(audits), cache)

	want := &models.OrderPreferences{RequireAllLineItemsDoneToComplete: true}
	// One database read serves both calls; the second is a cache hit.
	orgs.EXPECT().GetPreferences(uint(1)).Return(want, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := svc.Get(1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.RequireAllLineItemsDoneToComplete {
			t.Error("preferences lost in transit")
		}
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
}

func TestPreferenceUpdateInvalidatesCacheAndAudits(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationRepository(ctrl)
	audits := mocks.NewMockAuditLogRepository(ctrl)
	cache := newFakePreferenceCache()
	cache.entries[1] = &models.OrderPreferences{}
	svc := NewPreferenceService(orgs, NewAuditLogger(audits), cache)

	prefs := models.OrderPreferences{AllowCompletedOrderEdits: true}
	orgs.EXPECT().UpdatePreferences(uint(1), prefs).Return(nil)

	var entry *models.EntityAuditLog
	audits.EXPECT().CreateEntityEntry(gomock.Any()).DoAndReturn(func(e *models.EntityAuditLog) error {
		entry = e
		return nil
	})

	if err := svc.Update(1, prefs, testActor()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.deletes != 1 {
		t.Errorf("cache deletes = %d, want 1", cache.deletes)
	}
	if entry.EntityType != "organization" || entry.Action != "update" {
		t.Errorf("audit entry = (%s, %s), want (organization, update)", entry.EntityType, entry.Action)
	}
}

func TestPreferenceServiceToleratesNilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationRepository(ctrl)
	audits := mocks.NewMockAuditLogRepository(ctrl)
	svc := NewPreferenceService(orgs, NewAuditLogger(audits), nil)

	orgs.EXPECT().GetPreferences(uint(1)).Return(&models.OrderPreferences{}, nil)
	if _, err := svc.Get(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
