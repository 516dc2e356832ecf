package structs

type Zone struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	State  string `json:"state"`
}

type Zones []Zone

// Names returns the name of each zone in order
func (zz Zones) Names() []string {
	names := make([]string, len(zz))

	for i, z := range zz {
		names[i] = z.Name
	}

	return names
}
