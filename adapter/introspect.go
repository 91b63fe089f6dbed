// SPDX-License-Identifier: Apache-2.0

package adapter

import "sync"

// Interface is the D-Bus interface name of the remote menu service.
const Interface = "com.canonical.dbusmenu"

// InterfaceDescriptor is the read-only description of the remote menu
// interface: the method, signal and property names the protocol defines.
// One descriptor is built lazily on first use and shared by every transport
// in the process; it is never mutated afterwards.
type InterfaceDescriptor struct {
	Name       string
	Methods    []string
	Signals    []string
	Properties []string

	signalSet map[string]struct{}
}

var (
	descriptorOnce sync.Once
	descriptor     *InterfaceDescriptor
)

// Descriptor returns the shared interface descriptor, building it on the
// first call.
func Descriptor() *InterfaceDescriptor {
	descriptorOnce.Do(func() {
		descriptor = &InterfaceDescriptor{
			Name: Interface,
			Methods: []string{
				"GetLayout",
				"GetGroupProperties",
				"GetProperties",
				"GetProperty",
				"Event",
				"AboutToShow",
			},
			Signals: []string{
				"LayoutUpdated",
				"ItemPropertyUpdated",
				"ItemPropertiesUpdated",
				"ItemUpdated",
				"ItemActivationRequested",
			},
			Properties: []string{
				"Version",
				"Status",
			},
		}
		descriptor.signalSet = make(map[string]struct{}, len(descriptor.Signals))
		for _, s := range descriptor.Signals {
			descriptor.signalSet[s] = struct{}{}
		}
	})
	return descriptor
}

// HasSignal reports whether member is a signal the interface defines.
func (d *InterfaceDescriptor) HasSignal(member string) bool {
	_, ok := d.signalSet[member]
	return ok
}
