package registration

import "io"

// Upload describes an already-opened brochure stream received with the
// registration payload.
type Upload struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// Input is the combined account+company payload of one registration attempt.
// All fields arrive as strings from the multipart form; YearEstablished is
// parsed during validation.
type Input struct {
	FirstName            string
	LastName             string
	Email                string
	UserName             string
	Password             string
	PasswordConfirmation string
	ParticipationType    string

	CompanyName     string
	AddressLine     string
	City            string
	Region          string
	Country         string
	YearEstablished string
	Website         string

	Brochure *Upload
}
