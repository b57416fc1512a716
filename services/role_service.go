package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-admin/models"
)

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

// List returns every role with its grants, ordered by id so that the first
// match in HasPermission is stable.
func (s *RoleService) List(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := s.DB.WithContext(ctx).
		Preload("Grants", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// ReplaceGrants swaps the whole grant list of a role in one transaction.
// Duplicate modules are merged and blank actions dropped.
func (s *RoleService) ReplaceGrants(ctx context.Context, roleID uint, grants []models.PermissionGrant) (models.Role, error) {
	var role models.Role
	if err := s.DB.WithContext(ctx).First(&role, roleID).Error; err != nil {
		return models.Role{}, mapDBError(err)
	}

	merged := NormalizeGrants(grants)
	for i := range merged {
		merged[i].RoleID = role.ID
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", role.ID).Delete(&models.PermissionGrant{}).Error; err != nil {
			return err
		}
		if len(merged) == 0 {
			return nil
		}
		return tx.Create(&merged).Error
	})
	if err != nil {
		return models.Role{}, fmt.Errorf("failed to update grants: %w", err)
	}

	role.Grants = merged
	return role, nil
}

// NormalizeGrants trims names, merges grants for the same module and removes
// duplicate or empty actions, keeping first-seen order.
func NormalizeGrants(in []models.PermissionGrant) []models.PermissionGrant {
	out := make([]models.PermissionGrant, 0, len(in))
	index := map[string]int{}
	for _, g := range in {
		module := strings.TrimSpace(g.Module)
		if module == "" {
			continue
		}
		i, ok := index[module]
		if !ok {
			i = len(out)
			index[module] = i
			out = append(out, models.PermissionGrant{Module: module, Actions: datatypes.JSONSlice[string]{}})
		}
		for _, a := range g.Actions {
			a = strings.TrimSpace(a)
			if a == "" || slices.Contains(out[i].Actions, a) {
				continue
			}
			out[i].Actions = append(out[i].Actions, a)
		}
	}
	return out
}
