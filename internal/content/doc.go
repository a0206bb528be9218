// Package content holds the read-side rules shared by every post listing:
// which posts a viewer may see, how a listing is filtered and ordered, how a
// page is computed, and which panel scopes a viewer may enter.
//
// Everything here is pure except ListContent, which performs I/O only
// through the Store it is given.
package content
