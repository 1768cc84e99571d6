package services

import (
	"log"

	"print_shop/internal/models"
	"print_shop/internal/repository"
)

// PreferenceCache is a read-through cache for resolved organization
// preferences. Implemented by the redis client; optional.
type PreferenceCache interface {
	GetPreferences(orgID uint) (*models.OrderPreferences, error)
	SetPreferences(orgID uint, prefs *models.OrderPreferences) error
	DeletePreferences(orgID uint) error
}

type PreferenceService interface {
	Get(orgID uint) (*models.OrderPreferences, error)
	Update(orgID uint, prefs models.OrderPreferences, actor models.Actor) error
}

type preferenceService struct {
	orgRepo repository.OrganizationRepository
	audit   AuditLogger
	cache   PreferenceCache
}

func NewPreferenceService(orgRepo repository.OrganizationRepository, audit AuditLogger, cache PreferenceCache) PreferenceService {
	return &preferenceService{orgRepo: orgRepo, audit: audit, cache: cache}
}

func (s *preferenceService) Get(orgID uint) (*models.OrderPreferences, error) {
	if s.cache != nil {
		if prefs, err := s.cache.GetPreferences(orgID); err == nil && prefs != nil {
			return prefs, nil
		}
	}

	prefs, err := s.orgRepo.GetPreferences(orgID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetPreferences(orgID, prefs); err != nil {
			log.Printf("Warning: failed to cache preferences for org %d: %v", orgID, err)
		}
	}
	return prefs, nil
}

func (s *preferenceService) Update(orgID uint, prefs models.OrderPreferences, actor models.Actor) error {
	if err := s.orgRepo.UpdatePreferences(orgID, prefs); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.DeletePreferences(orgID); err != nil {
			log.Printf("Warning: failed to invalidate preference cache for org %d: %v", orgID, err)
		}
	}

	return s.audit.RecordEntityEvent(&models.EntityAuditLog{
		OrganizationID: orgID,
		EntityType:     "organization",
		EntityID:       orgID,
		Action:         "update",
		ActorUserID:    actor.UserID,
		ActorUserName:  actor.Name,
		Metadata: auditMetadata(map[string]interface{}{
			"preferences": prefs,
		}),
	})
}
