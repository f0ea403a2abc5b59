package correoargentino

import (
	"regexp"

	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
)

var numberPattern = regexp.MustCompile(`^([A-Z]{2})(\d{9})([A-Z]{2})$`)

// Number is a parsed S10 tracking number.
type Number struct {
	Product string // two-letter prefix, e.g. "CP"
	Serial  string // nine digits
	Country string // two-letter suffix, e.g. "AR"
}

// ParseNumber canonicalizes raw and splits it into its parts.
func ParseNumber(raw string) (Number, error) {
	if err := errors.ValidateTrackingNumber(raw); err != nil {
		return Number{}, err
	}
	m := numberPattern.FindStringSubmatch(normalize.Canonical(raw))
	if m == nil {
		return Number{}, errors.New(errors.ErrCodeInvalidInput, "tracking number must look like CP123456789AR")
	}
	return Number{Product: m[1], Serial: m[2], Country: m[3]}, nil
}

func (n Number) String() string { return n.Product + n.Serial + n.Country }

var services = map[string]string{
	"CA": "Carta certificada",
	"CC": "Carta certificada",
	"CD": "Carta documento",
	"CP": "Encomienda clásica",
	"CU": "Carta certificada",
	"CX": "Encomienda express",
	"EE": "EMS internacional",
	"EU": "EMS",
	"HC": "Paquete e-commerce",
	"LA": "Pequeño paquete",
	"RR": "Carta registrada internacional",
	"SU": "Paquete e-commerce",
	"UA": "Pequeño paquete internacional",
}

// Service names the product behind a prefix, "" when unknown.
func (n Number) Service() string {
	return services[n.Product]
}
