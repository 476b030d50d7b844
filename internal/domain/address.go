package domain

import (
	"errors"
	"strings"
)

type Address struct {
	FullName   string `json:"fullName,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func (a Address) Validate() error {
	var missing []string

	if strings.TrimSpace(a.Line1) == "" {
		missing = append(missing, "line1")
	}
	if strings.TrimSpace(a.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		missing = append(missing, "postalCode")
	}
	if strings.TrimSpace(a.Country) == "" {
		missing = append(missing, "country")
	}

	if len(missing) > 0 {
		return errors.New("missing " + strings.Join(missing, ", "))
	}

	return nil
}
