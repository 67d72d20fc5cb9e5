package features

const VectorLen = 10

// Positions inside Vector. The order is fixed by the trained model.
const (
	IdxYears = iota
	IdxCompanyCountry
	IdxWorkType
	IdxWorkHour
	IdxCity
	IdxCurrency
	IdxJobCategory
	IdxDay
	IdxMonth
	IdxYear
)

var featureNames = [VectorLen]string{
	"years",
	"company_country",
	"work_type",
	"work_hour",
	"city",
	"currency",
	"job_category",
	"day",
	"month",
	"year",
}

type Vector [VectorLen]float64

func FeatureNames() []string {
	out := make([]string, VectorLen)
	copy(out, featureNames[:])
	return out
}

func (v Vector) Row() []float64 {
	out := make([]float64, VectorLen)
	copy(out, v[:])
	return out
}

// Matrix wraps the vector as a single-row batch.
func (v Vector) Matrix() [][]float64 {
	return [][]float64{v.Row()}
}
