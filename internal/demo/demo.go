package demo

import (
	cattlelca "github.com/pasturelab/cattle-lca"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/stat"
)

// Monthly mean milk yield of the national dairy herd, litres per head
// and day, mid-month day-of-year knots. Spring calving concentrates
// the lactation between March and October.
var (
	milkYieldKnots  = []float64{15, 46, 74, 105, 135, 166, 196, 227, 258, 288, 319, 349}
	milkYieldDaily  = []float64{4.94, 10.3, 16.7, 21.2, 23.4, 22.7, 21.1, 19.2, 16.6, 12.8, 6.3735, 3.9}
	milkYieldWeight = []float64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
)

// DairyDailyMilk is the day-weighted mean of the monthly yields, the
// figure reported per cow in the inventory year.
func DairyDailyMilk() float64 {
	return stat.Mean(milkYieldDaily, milkYieldWeight)
}

// MilkYieldCurve interpolates the monthly yields into a day-of-year
// lactation curve without overshooting the seasonal peak.
func MilkYieldCurve() *interp.FritschButland {
	curve := new(interp.FritschButland)
	curve.Fit(milkYieldKnots, milkYieldDaily)
	return curve
}

// Scenario returns the 2018 Irish national herd and its reported
// fertiliser use, the inventory baseline used for demonstration runs.
func Scenario() cattlelca.Scenario {
	return cattlelca.Scenario{
		FarmID:  "irish_national_herd",
		Year:    2018,
		Country: "ireland",
		Herd: cattlelca.Herd{
			cattlelca.DairyCows:   pastureCohort(175298, 538, DairyDailyMilk(), 2.992828296, 13.5890411, 10.4109589),
			cattlelca.SucklerCows: pastureCohort(30587, 600, 1.410958904, 0.842751605, 12.2739726, 11.7260274),
			cattlelca.Bulls:       pastureCohort(4641.388771, 773, 0, 0.654140961, 11.56164384, 12.43835616),

			cattlelca.DxDCalvesF: pastureCohort(46993.69321, 149.575, 0, 1, 7.945205479, 16.05479452),
			cattlelca.DxBCalvesF: pastureCohort(33164.48649, 116.725, 0, 1, 7.945205479, 16.05479452),
			cattlelca.BxBCalvesF: pastureCohort(13985.29837, 175.125, 0, 1, 7.945205479, 16.05479452),
			cattlelca.DxDCalvesM: pastureCohort(32140.1008, 122.2, 0, 1, 7.945205479, 16.05479452),
			cattlelca.DxBCalvesM: pastureCohort(31755.95617, 118.55, 0, 1, 7.945205479, 16.05479452),
			cattlelca.BxBCalvesM: pastureCohort(13424.64053, 178.775, 0, 1, 7.945205479, 16.05479452),

			cattlelca.DxDHeifersLess2Yr: pastureCohort(49298.56099, 395.875, 0, 0, 11.56164384, 12.43835616),
			cattlelca.DxBHeifersLess2Yr: pastureCohort(30347.42586, 346.6, 0, 0, 11.56164384, 12.43835616),
			cattlelca.BxBHeifersLess2Yr: pastureCohort(14763.98982, 412.3, 0, 0, 11.56164384, 12.43835616),
			cattlelca.DxDSteersLess2Yr:  pastureCohort(37646.17385, 463.475, 0, 0, 11.56164384, 12.43835616),
			cattlelca.DxBSteersLess2Yr:  pastureCohort(29323.04018, 474.425, 0, 0, 11.56164384, 12.43835616),
			cattlelca.BxBSteersLess2Yr:  pastureCohort(14327.92261, 479.9, 0, 0, 11.56164384, 12.43835616),

			cattlelca.DxDHeifersMore2Yr: pastureCohort(384.1446311, 122.125, 0, 0, 12.98630137, 11.01369863),
			cattlelca.DxBHeifersMore2Yr: pastureCohort(0, 94.75, 0, 0, 12.98630137, 11.01369863),
			cattlelca.BxBHeifersMore2Yr: pastureCohort(0, 103.875, 0, 0, 12.38356164, 11.61643836),
			cattlelca.DxDSteersMore2Yr:  pastureCohort(5506.073046, 140.45, 0, 0, 18.73972603, 5.260273973),
			cattlelca.DxBSteersMore2Yr:  pastureCohort(4225.590942, 129.5, 0, 0, 18.73972603, 5.260273973),
			cattlelca.BxBSteersMore2Yr:  pastureCohort(2273.779022, 162.35, 0, 0, 18.73972603, 5.260273973),
		},
		Inputs: cattlelca.FarmInputs{
			Urea:        2072487.127,
			UreaAbated:  0,
			NFertiliser: 17310655.18,
			PFertiliser: 1615261.859,
			KFertiliser: 3922778.8,
		},
	}
}

// pastureCohort fills in the management shared by the whole national
// herd: grass fed on pasture, slurry stored in tanks, broadcast spread.
func pastureCohort(population, weight, dailyMilk, concentrate, outdoors, indoors float64) cattlelca.AnimalCohort {
	return cattlelca.AnimalCohort{
		Population:        population,
		Weight:            weight,
		DailyMilk:         dailyMilk,
		Forage:            "irish_grass",
		Grazing:           cattlelca.GrazingPasture,
		Concentrate:       "concentrate",
		ConcentrateAmount: concentrate,
		HoursOutdoors:     outdoors,
		HoursIndoors:      indoors,
		Storage:           cattlelca.StorageTankLiquid,
		Spreading:         cattlelca.SpreadBroadcast,
	}
}
