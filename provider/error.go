package provider

type errorNotFound interface {
	NotFound() bool
}

// ErrorNotFound returns true if the error is a "not found" type
func ErrorNotFound(err error) bool {
	if e, ok := err.(errorNotFound); ok && e.NotFound() {
		return true
	}
	return false
}

type errorInvalidNetwork interface {
	InvalidNetwork() bool
}

// ErrorInvalidNetwork returns true if the error is an "invalid network" type
func ErrorInvalidNetwork(err error) bool {
	if e, ok := err.(errorInvalidNetwork); ok && e.InvalidNetwork() {
		return true
	}
	return false
}

type errorInvalidSubnetCount interface {
	InvalidSubnetCount() bool
}

// ErrorInvalidSubnetCount returns true if the error is an "invalid subnet count" type
func ErrorInvalidSubnetCount(err error) bool {
	if e, ok := err.(errorInvalidSubnetCount); ok && e.InvalidSubnetCount() {
		return true
	}
	return false
}

type errorNoZones interface {
	NoZones() bool
}

// ErrorNoZones returns true if the error is a "no zones" type
func ErrorNoZones(err error) bool {
	if e, ok := err.(errorNoZones); ok && e.NoZones() {
		return true
	}
	return false
}
