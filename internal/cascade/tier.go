package cascade

import "fmt"

// Tier is the picker currently on screen.
type Tier int

const (
	TierNone Tier = iota
	TierSpecialization
	TierJobTitle
	TierOtherText
)

var tierNames = map[Tier]string{
	TierNone:           "none",
	TierSpecialization: "specialization",
	TierJobTitle:       "job_title",
	TierOtherText:      "other_text",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	name, ok := tierNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown tier %d", int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(b []byte) error {
	for tier, name := range tierNames {
		if name == string(b) {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown tier %q", string(b))
}
