// Package campaign implements outreach campaign management.
//
// Campaign status is a free-form label: any status may be set from any other,
// and the send/response/conversion counters are plain fields set through
// partial updates. It depends on repository interfaces defined in this
// package and should never import from api/.
//
// Repository implementations live in repository/postgres/ and repository/memory/.
package campaign
