package domain

// Country represents a persisted country. The client supplies the full
// key set; nothing is generated server-side.
type Country struct {
	ShortName string `json:"short_name" db:"short_name"`
	FullName  string `json:"full_name" db:"full_name"`
	Continent string `json:"continent" db:"continent"`
}

// CountryInput is the client-supplied payload for country creation
type CountryInput struct {
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`
	Continent string `json:"continent"`
}

// ToCountry builds a Country from the input, field for field
func (in CountryInput) ToCountry() Country {
	return Country{
		ShortName: in.ShortName,
		FullName:  in.FullName,
		Continent: in.Continent,
	}
}
