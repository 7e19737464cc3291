package types

const (
	PropertyServiceID      = "service.id"
	PropertyServiceRanking = "service.ranking"
	PropertyServicePID     = "service.pid"
)

// ServiceReference describes a registered service without exposing the
// service object itself.
type ServiceReference struct {
	ID         int
	Class      string
	Interfaces []string
	Properties Properties
}

// Ranking returns the integer service.ranking property, or 0 when the
// property is missing or not an integer.
func (r ServiceReference) Ranking() int {
	value, ok := r.Properties[PropertyServiceRanking]
	if !ok {
		return 0
	}
	ranking, ok := value.Int()
	if !ok {
		return 0
	}
	return ranking
}
