// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/godbus/dbus/v5"

// ItemProperties is one per-id entry of a GetGroupProperties reply or of the
// "updated" half of an ItemPropertiesUpdated signal; wire shape (ia{sv}).
type ItemProperties struct {
	ID         int32
	Properties map[string]dbus.Variant
}

// ItemPropertyNames is one per-id entry of the "removed" half of an
// ItemPropertiesUpdated signal; wire shape (ias).
type ItemPropertyNames struct {
	ID         int32
	Properties []string
}
