// Package countries holds the static country reference list served by the
// registration API.
package countries

// Country is one (code, display name) pair.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// list is fixed and ordered; the endpoint returns it verbatim.
var list = []Country{
	{Code: "PH", Name: "Philippines"},
	{Code: "US", Name: "United States"},
	{Code: "JP", Name: "Japan"},
	{Code: "DE", Name: "Germany"},
	{Code: "FR", Name: "France"},
}

// All returns the country list. Callers must not mutate the result.
func All() []Country {
	return list
}
