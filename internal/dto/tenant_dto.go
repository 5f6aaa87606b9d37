package dto

import "github.com/AsanTolepov/softwash/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTenantRequest struct {
	Name           string `json:"name" binding:"required"`
	Login          string `json:"login" binding:"required"`
	Password       string `json:"password" binding:"required,min=4"`
	BackupLogin    string `json:"backupLogin"`
	BackupPassword string `json:"backupPassword"`
	IsEnabled      bool   `json:"isEnabled"`
	ValidFrom      string `json:"validFrom"`
	ValidTo        string `json:"validTo"`
	AdminFirstName string `json:"adminFirstName"`
	AdminLastName  string `json:"adminLastName"`
	AdminAvatar    string `json:"adminAvatar"`
}

func (r CreateTenantRequest) Model() model.Tenant {
	return model.Tenant{
		Name:           r.Name,
		Login:          r.Login,
		Password:       r.Password,
		BackupLogin:    r.BackupLogin,
		BackupPassword: r.BackupPassword,
		IsEnabled:      r.IsEnabled,
		ValidFrom:      r.ValidFrom,
		ValidTo:        r.ValidTo,
		AdminFirstName: r.AdminFirstName,
		AdminLastName:  r.AdminLastName,
		AdminAvatar:    r.AdminAvatar,
	}
}

// UpdateTenantRequest carries optional fields only; nil means unchanged.
type UpdateTenantRequest struct {
	Name           *string `json:"name"`
	Login          *string `json:"login"`
	Password       *string `json:"password" binding:"omitempty,min=4"`
	BackupLogin    *string `json:"backupLogin"`
	BackupPassword *string `json:"backupPassword"`
	IsEnabled      *bool   `json:"isEnabled"`
	ValidFrom      *string `json:"validFrom"`
	ValidTo        *string `json:"validTo"`
	AdminFirstName *string `json:"adminFirstName"`
	AdminLastName  *string `json:"adminLastName"`
	AdminAvatar    *string `json:"adminAvatar"`
}

func (r UpdateTenantRequest) Patch() model.TenantPatch {
	return model.TenantPatch{
		Name:           r.Name,
		Login:          r.Login,
		Password:       r.Password,
		BackupLogin:    r.BackupLogin,
		BackupPassword: r.BackupPassword,
		IsEnabled:      r.IsEnabled,
		ValidFrom:      r.ValidFrom,
		ValidTo:        r.ValidTo,
		AdminFirstName: r.AdminFirstName,
		AdminLastName:  r.AdminLastName,
		AdminAvatar:    r.AdminAvatar,
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TenantResponse omits both credential pairs; they are write-only through
// the API.
type TenantResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Login          string `json:"login"`
	IsEnabled      bool   `json:"isEnabled"`
	ValidFrom      string `json:"validFrom"`
	ValidTo        string `json:"validTo"`
	AdminFirstName string `json:"adminFirstName,omitempty"`
	AdminLastName  string `json:"adminLastName,omitempty"`
}

func NewTenantResponse(t model.Tenant) TenantResponse {
	return TenantResponse{
		ID:             t.ID,
		Name:           t.Name,
		Login:          t.Login,
		IsEnabled:      t.IsEnabled,
		ValidFrom:      t.ValidFrom,
		ValidTo:        t.ValidTo,
		AdminFirstName: t.AdminFirstName,
		AdminLastName:  t.AdminLastName,
	}
}
