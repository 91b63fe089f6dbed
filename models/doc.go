// Package models defines the wire-level data structures exchanged between
// the D-Bus transport layer and the menu synchronization engine: layout
// descriptors, grouped property results, and property-removal sets.
//
// All property values are carried as dbus.Variant, which is the native typed
// value of the com.canonical.dbusmenu interface (string, int, bool, or any
// nested variant).
package models
