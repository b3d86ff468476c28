package scoring

// Tie marks a dichotomy whose yes and no counts are equal.
const Tie = 'X'

// DichotomyCount is the number of letters in a temperament code.
const DichotomyCount = 4

// Dichotomy is one opposing trait pair.
type Dichotomy struct {
	Name   string
	First  byte
	Second byte
}

// Dichotomies in code order.
var Dichotomies = [DichotomyCount]Dichotomy{
	{Name: "Extraversion/Introversion", First: 'E', Second: 'I'},
	{Name: "Sensing/iNtuition", First: 'S', Second: 'N'},
	{Name: "Thinking/Feeling", First: 'T', Second: 'F'},
	{Name: "Judging/Perceiving", First: 'J', Second: 'P'},
}

// Resolve picks the majority letter of a dichotomy, or Tie on exact equality.
func Resolve(d Dichotomy, t Tally) byte {
	switch {
	case t.Yes > t.No:
		return d.First
	case t.Yes < t.No:
		return d.Second
	default:
		return Tie
	}
}

// Code is a four-letter temperament code, possibly containing Tie markers.
type Code string

// AllTied is the code produced when every dichotomy is tied.
const AllTied Code = "XXXX"

// ResolveCode resolves the four dichotomy aggregates into a code.
func ResolveCode(t Tallies) Code {
	var letters [DichotomyCount]byte
	for i, agg := range t.Dichotomies() {
		letters[i] = Resolve(Dichotomies[i], agg)
	}
	return Code(letters[:])
}
