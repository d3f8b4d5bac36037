package domain

// BootstrapData provisions the first organization and its owner account on
// an empty deployment.
type BootstrapData struct {
	OrganizationName string
	OrganizationSlug string
	OwnerEmail       string
	OwnerName        string
	OwnerPassword    string
}
