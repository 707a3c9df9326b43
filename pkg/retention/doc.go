// Package retention computes deletion dates and resolves the final
// disposition of a scanned file.
//
// The deletion date is plain calendar-day arithmetic over the file's
// creation timestamp. The disposition rule is a fixed policy contract:
// a file is Deleted only when its deletion date has passed AND its
// reputation verdict is malicious. Every other combination retains the
// file, including clean files long past their retention date; that
// asymmetry is deliberate and must not be "fixed".
package retention
