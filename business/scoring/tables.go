package scoring

// Reference tables. Loaded once at init and never mutated afterwards, so they
// are safe to share across concurrent invocations without locking.

// neutralFactor is the identity multiplier applied when a signal is absent or
// unrecognized.
const neutralFactor = 1.0

var categoryMultipliers = map[string]float64{
	"electronics": 1.10,
	"clothing":    0.95,
	"books":       0.90,
	"home":        1.05,
	"sports":      1.00,
	"beauty":      1.08,
	"toys":        0.92,
	"other":       1.00,
}

// seasonalMultipliers is indexed by month, January = 0.
var seasonalMultipliers = [12]float64{
	1.10, // January - post-holiday sales
	0.95, // February - low season
	1.00, // March
	1.00, // April
	1.05, // May - spring shopping
	1.00, // June
	1.00, // July
	1.00, // August - back to school
	1.00, // September
	1.00, // October
	1.10, // November - pre-holiday
	1.15, // December - holiday season
}

// Sentiment lexicons. Matching is case-insensitive over whitespace-delimited
// tokens; multi-word expressions are not supported.
var positiveWords = map[string]struct{}{
	"good":      {},
	"great":     {},
	"excellent": {},
	"amazing":   {},
	"love":      {},
	"perfect":   {},
	"wonderful": {},
	"fantastic": {},
	"awesome":   {},
	"brilliant": {},
}

var negativeWords = map[string]struct{}{
	"bad":          {},
	"terrible":     {},
	"awful":        {},
	"hate":         {},
	"worst":        {},
	"horrible":     {},
	"disappointed": {},
	"poor":         {},
	"cheap":        {},
	"broken":       {},
}
