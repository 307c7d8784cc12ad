package ironic

// Node is a baremetal node as reported by the Ironic API. Only the
// fields the facade will expose are modeled; the node operations that
// populate them are still stubs.
type Node struct {
	UUID           string `json:"uuid"`
	Name           string `json:"name"`
	PowerState     string `json:"power_state"`
	ProvisionState string `json:"provision_state"`
	Maintenance    bool   `json:"maintenance"`
	LastError      string `json:"last_error,omitempty"`
}
