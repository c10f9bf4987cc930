package enum

// ProductType is the raw-material code recorded on a receipt.
// Each type carries its own set of required quality metrics.
type ProductType string

const (
	ProductTypeCloves ProductType = "FG"
	ProductTypeClaws  ProductType = "GG"
	ProductTypeLeaves ProductType = "CG"
)

// Valid reports whether t is one of the three product codes.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeCloves, ProductTypeClaws, ProductTypeLeaves:
		return true
	}
	return false
}

// Label returns the human-readable name of the product type.
func (t ProductType) Label() string {
	switch t {
	case ProductTypeCloves:
		return "Cloves"
	case ProductTypeClaws:
		return "Claws"
	case ProductTypeLeaves:
		return "Leaves"
	}
	return string(t)
}

// requiredQualityFields maps each product type to the quality metrics a
// receipt of that type must carry. Keeping this declarative avoids
// per-type validation branches in the service layer.
var requiredQualityFields = map[ProductType][]string{
	ProductTypeCloves: {"packaging_weight", "desiccation_rate", "humidity_rate_fg"},
	ProductTypeClaws:  {"approved_weight", "density"},
	ProductTypeLeaves: {"humidity_rate_cg"},
}

// RequiredQualityFields returns the quality-metric field names required for
// receipts of this product type.
func (t ProductType) RequiredQualityFields() []string {
	return requiredQualityFields[t]
}

// ProductTypes lists all valid product codes.
func ProductTypes() []ProductType {
	return []ProductType{ProductTypeCloves, ProductTypeClaws, ProductTypeLeaves}
}
