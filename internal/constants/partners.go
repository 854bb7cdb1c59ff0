package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// OTAPartner mirrors the ota_name column on ota_configurations.
// Configurations may be created with any name; only the values below have a
// registered adapter, everything else fails at dispatch time.
type OTAPartner string

const (
	PartnerBookingCom OTAPartner = "booking_com"
	PartnerAgoda      OTAPartner = "agoda"
	PartnerAirbnb     OTAPartner = "airbnb"
)

// Stringer ­– convenient for fmt / logs
func (p OTAPartner) String() string { return string(p) }

// NormalizePartner lowercases and trims a stored ota_name so that
// "Booking_Com" and "booking_com" resolve to the same adapter.
func NormalizePartner(name string) OTAPartner {
	return OTAPartner(strings.ToLower(strings.TrimSpace(name)))
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (p *OTAPartner) Scan(src interface{}) error {
	if src == nil {
		*p = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*p = OTAPartner(v)
	case []byte:
		*p = OTAPartner(v)
	default:
		return fmt.Errorf("OTAPartner: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (p OTAPartner) Value() (driver.Value, error) { return string(p), nil }
