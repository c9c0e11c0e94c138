package sensor

// Category is the outcome of the decision rule.
type Category string

const (
	// CategoryAlert is sent when a reading exceeds Threshold.
	CategoryAlert Category = "alert"
	// CategoryOK is sent for any other reading.
	CategoryOK Category = "ok"
	// CategoryHot is the ioc name for a reading above Threshold.
	CategoryHot Category = "hot"
	// CategoryCold is the ioc name for any other reading.
	CategoryCold Category = "cold"
)

// Threshold is the value a reading must exceed to be considered alarming.
// A reading equal to Threshold is not alarming.
const Threshold = 25

// Exceeds reports whether r is strictly above Threshold.
func Exceeds(r Reading) bool { return r.Data > Threshold }

// AlertOrOK is the rule used by the coupling demos.
func AlertOrOK(r Reading) Category {
	if Exceeds(r) {
		return CategoryAlert
	}
	return CategoryOK
}

// HotOrCold is the same rule with the vocabulary of the ioc demo.
func HotOrCold(r Reading) Category {
	if Exceeds(r) {
		return CategoryHot
	}
	return CategoryCold
}
