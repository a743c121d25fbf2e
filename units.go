package cattlelca

// Energy in megajoules
type Energy float64

func (e Energy) MJ() float64 {
	return float64(e)
}

func (e Energy) GJ() float64 {
	return float64(e) / 1000
}

// Emissions in kilograms per year of the substance named by the reporting
// view and category (CH4, N2O, CO2, NH3, CO2e or PO4e)
type Emissions float64

func (e Emissions) Kg() float64 {
	return float64(e)
}

func (e Emissions) Tonnes() float64 {
	return float64(e) / 1000
}

func (e Emissions) Kilotonnes() float64 {
	return e.Tonnes() / 1000
}
