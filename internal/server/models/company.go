package models

import "time"

// Company is the one-to-one dependent of a User. It is created in the same
// transaction as its owning user and never exists without it.
//
// Website and BrochurePath are nil when the registrant supplied no value.
type Company struct {
	ID              int64
	UserID          int64
	CompanyName     string
	AddressLine     string
	City            string
	Region          string
	Country         string
	YearEstablished int
	Website         *string
	BrochurePath    *string
	CreatedAt       time.Time
}
