package model

// Tenant is an isolated business account owning its own orders, staff and
// expenses. Only the superadmin tier creates, edits or deletes tenants.
//
// The primary login/password pair is handed to the business owner. The
// backup pair, when present, is a valid alternate login known only to the
// superadmin — the credential-recovery path when an owner locks themselves
// out.
type Tenant struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Login    string `json:"login"`
	Password string `json:"password"`

	BackupLogin    string `json:"backupLogin,omitempty"`
	BackupPassword string `json:"backupPassword,omitempty"`

	IsEnabled bool   `json:"isEnabled"`
	ValidFrom string `json:"validFrom"`
	ValidTo   string `json:"validTo"`

	// Optional admin profile shown in the back-office header.
	AdminFirstName string `json:"adminFirstName,omitempty"`
	AdminLastName  string `json:"adminLastName,omitempty"`
	AdminAvatar    string `json:"adminAvatar,omitempty"`
}

// HasBackupPair reports whether both backup credential fields are present.
// A partial pair never matches a login attempt.
func (t Tenant) HasBackupPair() bool {
	return t.BackupLogin != "" && t.BackupPassword != ""
}
