package emissions

// Emission factors fold the fuel's emission factor and its calorific
// coefficient into one multiplier: tonnes CO2 per unit of consumption.
const (
	// CoalEmissionFactor converts coal consumption into tonnes CO2.
	CoalEmissionFactor = 0.768 * 2.76

	// GasEmissionFactor converts gas consumption into tonnes CO2.
	GasEmissionFactor = 1.129 * 1.59
)

// Consumption bounds enforced on every reading, inclusive.
const (
	MinConsumption = 0.0
	MaxConsumption = 1000.0
)
