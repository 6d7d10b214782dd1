package render

// Level is the display-only color hint attached to a usage figure.
type Level int

const (
	LevelOK Level = iota
	LevelWarn
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelCritical:
		return "critical"
	default:
		return "ok"
	}
}

// hotTemperature is the Celsius reading above which a temperature is shown
// as critical. Cooler readings are graded like a percentage.
const hotTemperature = 70.0

// LevelFor grades a usage percentage against the warn and critical thresholds.
func (o Options) LevelFor(percent float64) Level {
	switch {
	case percent >= o.CriticalPercent:
		return LevelCritical
	case percent >= o.WarnPercent:
		return LevelWarn
	default:
		return LevelOK
	}
}

func (o Options) TemperatureLevel(celsius float64) Level {
	if celsius > hotTemperature {
		return LevelCritical
	}
	return o.LevelFor(celsius)
}
