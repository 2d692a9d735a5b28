// Package catalog holds the statically compiled package (pricing tier)
// catalog offered by the provisioning wizard. There is no dynamic package
// source; every PackageID resolves against the fixed list below.
package catalog

// PackageID identifies a pricing tier.
type PackageID string

const (
	Starter      PackageID = "starter"
	Professional PackageID = "professional"
	Enterprise   PackageID = "enterprise"
)

// DefaultPackageID is preselected when a wizard starts.
const DefaultPackageID = Professional

// Unlimited marks a resource limit with no upper bound.
const Unlimited = -1

// IsValid returns true if the id is one of the catalog packages.
func (id PackageID) IsValid() bool {
	_, ok := Lookup(id)
	return ok
}

// String implements fmt.Stringer.
func (id PackageID) String() string {
	return string(id)
}

// Package is a fixed pricing tier with its resource limits.
type Package struct {
	ID           PackageID
	Name         string
	MonthlyPrice int
	Currency     string
	Features     []string
	Recommended  bool
	MaxUsers     int
	MaxStorageGB int
}

// packages is ordered the way the selector renders its cards.
var packages = []Package{
	{
		ID:           Starter,
		Name:         "Starter",
		MonthlyPrice: 99,
		Currency:     "TRY",
		Features:     []string{"10 users", "10 GB storage", "Email support", "Core features"},
		MaxUsers:     10,
		MaxStorageGB: 10,
	},
	{
		ID:           Professional,
		Name:         "Professional",
		MonthlyPrice: 299,
		Currency:     "TRY",
		Features:     []string{"50 users", "100 GB storage", "Phone support", "API access", "Advanced features"},
		Recommended:  true,
		MaxUsers:     50,
		MaxStorageGB: 100,
	},
	{
		ID:           Enterprise,
		Name:         "Enterprise",
		MonthlyPrice: 999,
		Currency:     "TRY",
		Features:     []string{"Unlimited users", "Unlimited storage", "Priority support", "Custom integrations", "SLA guarantee"},
		MaxUsers:     Unlimited,
		MaxStorageGB: Unlimited,
	},
}

// All returns a copy of the catalog in display order.
func All() []Package {
	out := make([]Package, len(packages))
	for i, p := range packages {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Lookup resolves a package by id.
func Lookup(id PackageID) (Package, bool) {
	for _, p := range packages {
		if p.ID == id {
			p.Features = append([]string(nil), p.Features...)
			return p, true
		}
	}
	return Package{}, false
}

// IDs returns the catalog package ids in display order.
func IDs() []PackageID {
	ids := make([]PackageID, len(packages))
	for i, p := range packages {
		ids[i] = p.ID
	}
	return ids
}
