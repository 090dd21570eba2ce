// Package timezones offers IANA time zones to admin panels: select field
// choices, a search form view and a JSON options endpoint for remote
// selects. The zone list is embedded from data/zones.txt.
package timezones
