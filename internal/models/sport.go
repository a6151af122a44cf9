package models

// Sport is the fixed set of sports an event can be about.
type Sport string

const (
	SportFootball      Sport = "Football"
	SportBasketball    Sport = "Basketball"
	SportVolleyball    Sport = "Volleyball"
	SportHandball      Sport = "Handball"
	SportTennis        Sport = "Tennis"
	SportPadel         Sport = "Padel"
	SportCycling       Sport = "Cycling"
	SportRunning       Sport = "Running"
	SportSkateboarding Sport = "Skateboarding"
	SportCamping       Sport = "Camping"
	SportFitness       Sport = "Fitness"
	SportSwimming      Sport = "Swimming"
)

// Sports lists every supported sport in display order.
var Sports = []Sport{
	SportFootball,
	SportBasketball,
	SportVolleyball,
	SportHandball,
	SportTennis,
	SportPadel,
	SportCycling,
	SportRunning,
	SportSkateboarding,
	SportCamping,
	SportFitness,
	SportSwimming,
}

// Valid reports whether s is one of the supported sports.
func (s Sport) Valid() bool {
	for _, known := range Sports {
		if s == known {
			return true
		}
	}
	return false
}
