package entity

// UpdateFrequency is the cadence bucket governing how often an entity's
// Update runs. It is immutable after entity creation.
type UpdateFrequency uint8

const (
	// FrequencyNone entities never receive Update calls.
	FrequencyNone UpdateFrequency = iota
	// FrequencyFast entities update every frame.
	FrequencyFast
	// FrequencyOnSecond entities update once per accumulated second.
	FrequencyOnSecond
	// FrequencyOnCycle entities update once per cycle boundary.
	FrequencyOnCycle
)

func (f UpdateFrequency) String() string {
	switch f {
	case FrequencyNone:
		return "None"
	case FrequencyFast:
		return "Fast"
	case FrequencyOnSecond:
		return "OnSecond"
	case FrequencyOnCycle:
		return "OnCycle"
	default:
		return "Unknown"
	}
}

// Configuration describes an entity to the world: its tag, its cadence,
// and whether it participates in renderable aggregation.
type Configuration struct {
	Tag         string
	Frequency   UpdateFrequency
	WantsRender bool
}

// NewConfiguration builds an entity configuration.
func NewConfiguration(tag string, frequency UpdateFrequency, wantsRender bool) Configuration {
	return Configuration{
		Tag:         tag,
		Frequency:   frequency,
		WantsRender: wantsRender,
	}
}
