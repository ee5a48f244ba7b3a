package models

// Organization is the singleton configuration record for the whole
// deployment. It is read-modify-written in place and never duplicated.
type Organization struct {
	Name           string `json:"name" validate:"required,max=200"`
	Tagline        string `json:"tagline" validate:"max=200"`
	Theme          string `json:"theme"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Logo           string `json:"logo,omitempty"`
}

// DefaultOrganization is the record served before an administrator has
// configured anything.
func DefaultOrganization() Organization {
	return Organization{
		Name:           "Volunteer Hub",
		Tagline:        "Rally your volunteers",
		Theme:          "light",
		PrimaryColor:   "#3B82F6",
		SecondaryColor: "#10B981",
	}
}
