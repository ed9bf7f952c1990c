package profile

// Quality flag codes follow the ARGO reference table. The codes are
// stored as plain integers in the database.
const (
	QualityGood           = 1
	QualityProbablyGood   = 2
	QualityBadCorrectable = 3
	QualityBad            = 4
	QualityChanged        = 5
	QualityEstimated      = 8
	QualityMissing        = 9
)

// QualityFlags maps flag codes to their human-readable meaning.
var QualityFlags = map[int]string{
	1: "Good data",
	2: "Probably good data",
	3: "Bad data potentially correctable",
	4: "Bad data",
	5: "Value changed",
	6: "Not used",
	7: "Not used",
	8: "Estimated value",
	9: "Missing value",
}

// GoodQuality reports whether a flag counts as good for summary
// statistics (good or probably good).
func GoodQuality(flag int) bool {
	return flag <= QualityProbablyGood
}
