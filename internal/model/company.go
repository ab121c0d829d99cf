package model

// Company is the singleton shop profile, stored at one well-known identifier.
// Saving merges at the field level, so an empty incoming field does not wipe a
// previously stored value.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
	TaxID   string
	// Logo embedded as a data URL.
	LogoURL string
}
