package aws

// errorNotFound means the requested item was not found
type errorNotFound string

// Error satisfies the error interface
func (e errorNotFound) Error() string {
	return string(e)
}

// NotFound defines the behavior of this error
func (e errorNotFound) NotFound() bool {
	return true
}

// ErrorNotFound returns true if the error is a "not found" type
func ErrorNotFound(err error) bool {
	if e, ok := err.(errorNotFound); ok && e.NotFound() {
		return true
	}
	return false
}

// errorInvalidNetwork means the network was not a valid cidr block
type errorInvalidNetwork string

// Error satisfies the error interface
func (e errorInvalidNetwork) Error() string {
	return string(e)
}

// InvalidNetwork defines the behavior of this error
func (e errorInvalidNetwork) InvalidNetwork() bool {
	return true
}

// ErrorInvalidNetwork returns true if the error is an "invalid network" type
func ErrorInvalidNetwork(err error) bool {
	if e, ok := err.(errorInvalidNetwork); ok && e.InvalidNetwork() {
		return true
	}
	return false
}

// errorInvalidSubnetCount means the requested subnet count was not usable
type errorInvalidSubnetCount string

// Error satisfies the error interface
func (e errorInvalidSubnetCount) Error() string {
	return string(e)
}

// InvalidSubnetCount defines the behavior of this error
func (e errorInvalidSubnetCount) InvalidSubnetCount() bool {
	return true
}

// ErrorInvalidSubnetCount returns true if the error is an "invalid subnet count" type
func ErrorInvalidSubnetCount(err error) bool {
	if e, ok := err.(errorInvalidSubnetCount); ok && e.InvalidSubnetCount() {
		return true
	}
	return false
}

// errorNoZones means the region reported no usable availability zones
type errorNoZones string

// Error satisfies the error interface
func (e errorNoZones) Error() string {
	return string(e)
}

// NoZones defines the behavior of this error
func (e errorNoZones) NoZones() bool {
	return true
}

// ErrorNoZones returns true if the error is a "no zones" type
func ErrorNoZones(err error) bool {
	if e, ok := err.(errorNoZones); ok && e.NoZones() {
		return true
	}
	return false
}
